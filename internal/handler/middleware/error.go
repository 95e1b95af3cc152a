package middleware

import (
	"log/slog"
	"net/http"

	"flashbooth/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors recorded on the context into the public error
// envelope. It only acts when no handler wrote a body, and the newest public
// error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		writeInternalError(c)
	}
}

// CustomRecovery converts panics into a 500 envelope instead of gin's
// default plain-text response.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)
				writeInternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeInternalError(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(http.StatusInternalServerError, resp)
}
