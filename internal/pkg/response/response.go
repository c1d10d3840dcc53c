package response

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// Body is the envelope every endpoint answers with.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = 200
	}
	if message == "" {
		message = "Success"
	}
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Body{Success: true, Message: message, Data: data})
}

// Error writes the failure envelope. The underlying error is always
// logged; it is echoed to the caller only when gin is not running in
// release mode.
func Error(c *gin.Context, status int, message string, err error) {
	if status == 0 {
		status = 500
	}
	if message == "" {
		message = "Server Error"
	}
	body := Body{Success: false, Message: message}
	if err != nil {
		logutil.GetLogger(requestContext(c)).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
		if gin.Mode() != gin.ReleaseMode {
			body.Error = err.Error()
		}
	}
	c.JSON(status, body)
}

func requestContext(c *gin.Context) context.Context {
	if c != nil && c.Request != nil {
		return c.Request.Context()
	}
	return context.Background()
}
