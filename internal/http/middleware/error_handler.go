package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/pkg/apperror"
)

// ErrorHandler renders errors attached with c.Error when the handler did
// not write a response itself. Internal errors are masked.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		logger.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("Request error")

		statusCode := http.StatusInternalServerError
		message := "internal server error"

		var appErr *apperror.AppError
		if errors.As(err.Err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
			statusCode = appErr.HTTPStatus
			message = appErr.Message
		}

		c.JSON(statusCode, gin.H{"error": message})
	}
}
