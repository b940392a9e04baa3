// migrations встраивает SQL-схему mindwell в бинарник.
// Файлы применяются по возрастанию числового префикса (N_name.up.sql).
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
