package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondServerError 按统一结构报告 500 错误，保留底层错误信息。
func respondServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Server error",
		"error":   err.Error(),
	})
}

// readRawBody 读取原始请求体。替换类接口不做提前绑定，
// 由服务层决定解码目标类型。
func readRawBody(c *gin.Context) (json.RawMessage, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		respondServerError(c, err)
		return nil, false
	}
	return json.RawMessage(raw), true
}
