package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the uniform error body every endpoint returns.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{Code: code, Message: message})
}

func BadRequest(c *gin.Context, code, message string) { Write(c, http.StatusBadRequest, code, message) }

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) { Write(c, http.StatusForbidden, code, message) }

func NotFound(c *gin.Context, code, message string) { Write(c, http.StatusNotFound, code, message) }

func Conflict(c *gin.Context, code, message string) { Write(c, http.StatusConflict, code, message) }

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
