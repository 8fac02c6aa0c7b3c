package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier проверяет пароль доступа к экрану назначений
// Вынесен в интерфейс, чтобы механизм проверки был подменяемым и пароль
// не был зашит в код
type PasswordVerifier interface {
	Verify(password string) error
}

// BcryptVerifier сверяет пароль с bcrypt-хешем из конфигурации
type BcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier создает verifier с заданным bcrypt-хешем
func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

// Verify возвращает ErrInvalidPassword, если пароль не совпадает с хешем
func (v *BcryptVerifier) Verify(password string) error {
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// HashPassword создает bcrypt-хеш пароля
// Используется утилитой генерации конфигурации и тестами
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
