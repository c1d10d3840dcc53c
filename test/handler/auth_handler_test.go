package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignupFlow(t *testing.T) {
	env := setupRouter(t)

	body := map[string]interface{}{
		"name":             "Somchai Jaidee",
		"studentId":        "6401234",
		"rfidCardNumber":   "0123456789",
		"email":            "somchai@example.com",
		"phone":            "08123456789",
		"password":         "secret",
		"verificationCode": 123456,
	}
	resp := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	got := decodeBody(t, resp)
	require.Equal(t, true, got["success"])
	require.Equal(t, "Verification code sent", got["message"])

	acct, ok := env.pending.Items["somchai@example.com"]
	require.True(t, ok)
	require.Equal(t, "123456", acct.VerificationCode)
	require.NotEqual(t, "secret", acct.PasswordHash)

	require.Len(t, env.sender.Mail, 1)
	require.Equal(t, "somchai@example.com", env.sender.Mail[0].To)

	// Same email again is a conflict.
	resp = doJSON(t, env.router, http.MethodPost, "/api/v1/auth/signup", "", body)
	require.Equal(t, http.StatusConflict, resp.Code)
	got = decodeBody(t, resp)
	require.Equal(t, false, got["success"])
}

func TestSignupValidation(t *testing.T) {
	env := setupRouter(t)

	body := map[string]interface{}{
		"name":           "Somchai Jaidee",
		"studentId":      "12345",
		"rfidCardNumber": "0123456789",
		"email":          "somchai@example.com",
		"phone":          "08123456789",
		"password":       "secret",
	}
	resp := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/signup", "", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	got := decodeBody(t, resp)
	require.Equal(t, false, got["success"])
	require.Contains(t, got["message"], "Student ID")
	require.Empty(t, env.pending.Items)
}

func TestResendCodeEndpoint(t *testing.T) {
	env := setupRouter(t)

	body := map[string]interface{}{
		"name":           "Somchai Jaidee",
		"studentId":      "6401234",
		"rfidCardNumber": "0123456789",
		"email":          "somchai@example.com",
		"phone":          "08123456789",
		"password":       "secret",
	}
	resp := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	// Immediately asking again trips the cooldown.
	resp = doJSON(t, env.router, http.MethodPost, "/api/v1/auth/resend-code", "",
		map[string]string{"email": "somchai@example.com"})
	require.Equal(t, http.StatusTooManyRequests, resp.Code)

	resp = doJSON(t, env.router, http.MethodPost, "/api/v1/auth/resend-code", "",
		map[string]string{"email": "unknown@example.com"})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := setupRouter(t)
	env.seedManager(t, "booth1@example.com", "secret")

	resp := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": "booth1@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, resp.Code)

	got := decodeBody(t, resp)
	require.Equal(t, true, got["success"])
	data := got["data"].(map[string]interface{})
	require.NotEmpty(t, data["token"])
	manager := data["manager"].(map[string]interface{})
	require.Equal(t, "booth1@example.com", manager["email"])

	resp = doJSON(t, env.router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": "booth1@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, env.router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": "booth1@example.com"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
