package unlock_prescriptions

// UnlockRequest HTTP request model
type UnlockRequest struct {
	Password string `json:"password"`
}

// UnlockResponse HTTP response model
type UnlockResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int    `json:"expiresIn"` // Время жизни токена в секундах
}
