package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuslab/printbooth/internal/pkg/response"
	"github.com/campuslab/printbooth/internal/service"
)

type AuthHandler struct {
	signup *service.SignupService
	auth   *service.AuthService
}

func NewAuthHandler(signup *service.SignupService, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{signup: signup, auth: auth}
}

type signupRequest struct {
	Name             string      `json:"name"`
	StudentID        string      `json:"studentId"`
	RFIDCardNumber   string      `json:"rfidCardNumber"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	Password         string      `json:"password"`
	VerificationCode interface{} `json:"verificationCode"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	acct, err := h.signup.Signup(c.Request.Context(), service.SignupParams{
		Name:             req.Name,
		StudentID:        req.StudentID,
		RFIDCardNumber:   req.RFIDCardNumber,
		Email:            req.Email,
		Phone:            req.Phone,
		Password:         req.Password,
		VerificationCode: req.VerificationCode,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Verification code sent", gin.H{
		"email":     acct.Email,
		"expiresAt": acct.VerificationCodeExpiresAt,
	})
}

type resendCodeRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ResendCode(c *gin.Context) {
	var req resendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.signup.ResendCode(c.Request.Context(), req.Email); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Verification code sent", nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	m, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Success", gin.H{"manager": m, "token": token})
}
