package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every endpoint renders
type Response struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// OK renders a success envelope with HTTP 200
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{OK: true, Data: data})
}

// Fail renders a failure envelope with the given status
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{OK: false, Error: message})
}
