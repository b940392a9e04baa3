package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// sqNow — now() в SET/VALUES squirrel.
var sqNow = sq.Expr("now()")

// putIf кладёт значение в SET-карту, только если указатель задан.
func putIf[T any](set map[string]any, column string, v *T) {
	if v != nil {
		set[column] = *v
	}
}

// window применяет Limit/Offset; нулевой Limit оставляет выборку целиком.
func window(b sq.SelectBuilder, p storage.Page) sq.SelectBuilder {
	if p.Limit == 0 {
		return b
	}

	return b.Limit(p.Limit).Offset(p.Offset)
}
