package unlock_prescriptions

// PasswordVerifier проверяет пароль доступа к медицинским маршрутам
type PasswordVerifier interface {
	Verify(password string) error
}

// TokenIssuer выпускает токен доступа для субъекта
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
