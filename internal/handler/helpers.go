package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslab/printbooth/internal/middleware"
	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
	"github.com/campuslab/printbooth/internal/pkg/response"
	"github.com/campuslab/printbooth/internal/pkg/validate"
)

func getUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserIDKey)
}

func handleError(c *gin.Context, err error) {
	var verrs validate.Errors
	switch {
	case err == nil:
		return
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, verrs.Error(), nil)
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, appErr.ErrForbidden):
		response.Error(c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
	case errors.Is(err, appErr.ErrConflict):
		response.Error(c, http.StatusConflict, "account already exists", nil)
	case errors.Is(err, appErr.ErrTooMany):
		response.Error(c, http.StatusTooManyRequests, "too many requests", nil)
	default:
		response.Error(c, http.StatusInternalServerError, "Server Error", err)
	}
}
