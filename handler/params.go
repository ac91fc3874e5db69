package handler

import (
	"AppNotas/pkg/response"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 非法 ID 与不存在同样处理
func pathID(c *gin.Context, notFound string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewNotFoundError(notFound)
	}
	return id, nil
}
