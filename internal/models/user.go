package models

import "time"

// Имена ролей в таблице user_roles.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User — учётная запись и профиль пользователя.
// Роли хранятся только в user_role_mappings и подгружаются отдельно.
type User struct {
	ID                    int64      `json:"user_id"`
	Username              string     `json:"username"`
	Email                 string     `json:"email"`
	PasswordHash          string     `json:"-"`
	FullName              *string    `json:"full_name"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Gender                *string    `json:"gender"`
	Bio                   *string    `json:"bio"`
	ProfileImage          *string    `json:"profile_image"`
	AvatarKey             *string    `json:"-"`
	EmergencyContactName  *string    `json:"emergency_contact_name"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone"`
	WaterGoalML           int        `json:"water_goal_ml"`
	JournalPasswordHash   *string    `json:"-"`
	JournalPasswordSet    bool       `json:"journal_password_set"`
	IsBanned              bool       `json:"is_banned"`
	Roles                 []string   `json:"roles,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// HasRole сообщает, есть ли у пользователя роль name среди загруженных.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}

	return false
}

// PrimaryRole — самая сильная роль пользователя: admin > moderator > user.
func (u *User) PrimaryRole() string {
	switch {
	case u.HasRole(RoleAdmin):
		return RoleAdmin
	case u.HasRole(RoleModerator):
		return RoleModerator
	default:
		return RoleUser
	}
}

// PublicUser — публичная карточка автора в сообществе.
type PublicUser struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity — проверенная личность запроса, извлечённая из токена.
type Identity struct {
	UserID    int64
	Username  string
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}

// AuthResult — результат регистрации/входа.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
