package store

import "errors"

var (
	// ErrValidation — обязательное поле пустое после нормализации.
	ErrValidation = errors.New("validation error")
	// ErrUserAlreadyExist — email уже занят.
	ErrUserAlreadyExist   = errors.New("user already exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
