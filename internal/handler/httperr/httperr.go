// Package httperr defines the error envelope every endpoint returns and the
// single helper handlers use to emit it.
package httperr

import "github.com/gin-gonic/gin"

// Response is the public error body: {"error":{"message":...},"detail":...}.
// Status travels on the context only, never in the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the public error body and records the underlying
// error on the gin context so the logging middleware can see the real cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
