package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/starcomputers/internal/content"
	"github.com/starcomputers/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	contents *service.ContentService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		contents: service.NewContentService(gdb),
	}
}

// GetContent 返回整站内容文档，不存在时用默认内容惰性创建。
func (a *API) GetContent(c *gin.Context) {
	doc, err := a.contents.GetOrCreate()
	if err != nil {
		respondServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ReplaceContent 用请求体中的文档整体覆盖存储内容。
func (a *API) ReplaceContent(c *gin.Context) {
	raw, ok := readRawBody(c)
	if !ok {
		return
	}

	doc, err := a.contents.ReplaceAll(raw)
	if err != nil {
		respondServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ReplaceSection 整体替换路径参数指定的区块。
func (a *API) ReplaceSection(c *gin.Context) {
	name := c.Param("section")

	raw, ok := readRawBody(c)
	if !ok {
		return
	}

	value, err := a.contents.ReplaceSection(name, raw)
	if err != nil {
		if errors.Is(err, content.ErrInvalidSection) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid section name"})
			return
		}
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s updated successfully", name),
		"data":    value,
	})
}

// ResetContent 删除现有内容并恢复为默认文档。
func (a *API) ResetContent(c *gin.Context) {
	doc, err := a.contents.ResetToDefault()
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content reset to default",
		"data":    doc,
	})
}

// ImportContent 删除现有内容并导入请求体中的文档。
func (a *API) ImportContent(c *gin.Context) {
	raw, ok := readRawBody(c)
	if !ok {
		return
	}

	doc, err := a.contents.ImportAll(raw)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content imported successfully",
		"data":    doc,
	})
}

// HealthCheck 是存活探针。
func (a *API) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Star Computers API is running",
	})
}
