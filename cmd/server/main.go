package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/starcomputers/internal/config"
	"github.com/starcomputers/internal/db"
	"github.com/starcomputers/internal/handler"
	"github.com/starcomputers/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库；存储不可用时直接退出，不降级运行
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	api := handler.NewAPI(db.DB)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.FrontendDir)
	log.Printf("API: http://localhost:%s/api/content", cfg.Port)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
