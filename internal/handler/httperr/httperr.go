// Package httperr carries the error envelope the admin endpoints (receipt
// review, invoice issuing) respond with.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the admin error envelope. Detail holds structured context such
// as per-field invoice violations. Status is not serialized; it rides along
// so the error-handler middleware can replay the envelope from the gin error
// stack.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the envelope and records the original error on the
// gin error stack for logging and monitoring.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
