package auth

import "errors"

var (
	// ErrInvalidPassword возвращается при неверном пароле
	ErrInvalidPassword = errors.New("auth: invalid password")

	// ErrTokenInvalid возвращается при некорректном или подделанном токене
	ErrTokenInvalid = errors.New("auth: invalid token")

	// ErrTokenExpired возвращается при истекшем токене
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("auth: internal error")
)
