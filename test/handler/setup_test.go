package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/campuslab/printbooth/internal/handler"
	"github.com/campuslab/printbooth/internal/middleware"
	"github.com/campuslab/printbooth/internal/model"
	"github.com/campuslab/printbooth/internal/service"
	"github.com/campuslab/printbooth/test/testutil"
)

var testJWTSecret = []byte("test-secret")

type testEnv struct {
	router   http.Handler
	pending  *testutil.FakePendingAccountRepository
	managers *testutil.FakeBoothManagerRepository
	sender   *testutil.RecordingSender
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pending := testutil.NewFakePendingAccountRepository()
	managers := testutil.NewFakeBoothManagerRepository()
	sender := testutil.NewRecordingSender()

	signupService := service.NewSignupService(pending, sender)
	authService := service.NewAuthService(managers, testJWTSecret, time.Hour)
	boothService := service.NewBoothService(managers)

	deps := handler.RouterDeps{
		Auth:      handler.NewAuthHandler(signupService, authService),
		Manager:   handler.NewManagerHandler(boothService),
		JWTSecret: testJWTSecret,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return &testEnv{router: engine, pending: pending, managers: managers, sender: sender}
}

func (e *testEnv) seedManager(t *testing.T, email, plainPassword string) *model.BoothManager {
	t.Helper()
	m, err := e.managers.Create(context.Background(), &model.BoothManager{
		Name:          "Booth One",
		Email:         email,
		Password:      plainPassword,
		BoothName:     "Library Booth",
		BoothLocation: "Central Library, Floor 1",
		BoothCode:     "BOOTH-001",
		PaperCapacity: 500,
		PrinterName:   "Main Printer",
		PrinterModel:  "HP LaserJet Pro M404dn",
	})
	require.NoError(t, err)
	return m
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}
