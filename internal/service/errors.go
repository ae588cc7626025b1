package service

import "errors"

// Ошибки бизнес-уровня. Хендлеры сопоставляют их с HTTP-кодами через errors.Is,
// все остальное отдается как внутренняя ошибка.
var (
	ErrNotFound           = errors.New("incident not found")
	ErrInvalidState       = errors.New("invalid incident state")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountNotFound    = errors.New("account not found")
)
