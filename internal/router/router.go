package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/starcomputers/internal/handler"
)

// requestIDHeader 透传或生成请求标识，便于日志排查。
const requestIDHeader = "X-Request-ID"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, frontendDir string) *gin.Engine {
	r := gin.Default()

	// 与原前端同源策略保持一致：完全放开跨域
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(requestID())

	// 健康检查
	r.GET("/api/health", api.HealthCheck)

	// 内容文档 API
	contentGroup := r.Group("/api/content")
	{
		contentGroup.GET("", api.GetContent)
		contentGroup.PUT("", api.ReplaceContent)
		contentGroup.PUT("/:section", api.ReplaceSection)
		contentGroup.POST("/reset", api.ResetContent)
		contentGroup.POST("/import", api.ImportContent)
	}

	// 静态前端：落地页与后台编辑页都是纯静态文件
	if dir := strings.TrimSpace(frontendDir); dir != "" {
		r.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(dir, "index.html"))
		})
		r.GET("/admin", func(c *gin.Context) {
			c.File(filepath.Join(dir, "admin.html"))
		})
		r.NoRoute(serveFrontendFile(dir))
	}

	return r
}

// requestID 为每个请求补齐 X-Request-ID，调用方已携带时原样保留。
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// serveFrontendFile 把未匹配的 GET 请求回退到前端目录下的静态文件。
func serveFrontendFile(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Status(http.StatusNotFound)
			return
		}

		candidate := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(candidate)
	}
}
