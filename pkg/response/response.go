package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一的消息体，成功和失败共用
type Response struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message 只带提示语的成功响应
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{Message: msg})
}
