package models

import (
	"time"
)

// Роли, различаемые движком при аутентификации
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account - учетная запись. Жесткое удаление не поддерживается,
// вместо него используется флаг IsActive.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountRole - связь учетной записи с именованной ролью
type AccountRole struct {
	ID          int64  `json:"id"`
	AccountID   *int64 `json:"account_id,omitempty"`
	RoleName    string `json:"role_name"`
	Description string `json:"description,omitempty"`
}

// Session - выданная сессия с клеймами, которые использует фронт
type Session struct {
	Token     string `json:"token"`
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Claims - разобранные клеймы сессионного токена
type Claims struct {
	AccountID int64
	Username  string
	Email     string
	Role      string
}
