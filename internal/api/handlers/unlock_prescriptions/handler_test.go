package unlock_prescriptions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirisampada/SSCC-BookingService/internal/auth"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestHandler(t *testing.T) (*Handler, *auth.TokenManager) {
	t.Helper()

	hash, err := auth.HashPassword("clinic-pass")
	require.NoError(t, err)

	manager := auth.NewTokenManager("test-secret", time.Hour)
	return NewHandler(auth.NewBcryptVerifier(hash), manager, time.Hour, nopLogger{}), manager
}

func post(body string) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/unlock", strings.NewReader(body))
	return httptest.NewRecorder(), req
}

func TestHandle_CorrectPassword(t *testing.T) {
	handler, manager := newTestHandler(t)

	rec, req := post(`{"password":"clinic-pass"}`)
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body UnlockResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Bearer", body.TokenType)
	assert.Equal(t, 3600, body.ExpiresIn)

	// Выданный токен принимается обратно
	subject, err := manager.Parse(body.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.SubjectDoctor, subject)
}

func TestHandle_WrongPassword(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec, req := post(`{"password":"nope"}`)
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_EmptyPassword(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec, req := post(`{"password":""}`)
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec, req := post(`{"password":`)
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
