package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/lpranav17/LCMS-Automation/internal/config"
	"github.com/lpranav17/LCMS-Automation/internal/server/handlers"
	"github.com/lpranav17/LCMS-Automation/internal/service/template"
	"github.com/lpranav17/LCMS-Automation/internal/store"
)

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	history *store.Store
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	// 导出历史使用 SQLite，模板使用 JSON 文件
	history, err := store.New(filepath.Join(dataDir, "lcmsgen.db"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	templates := template.NewFileStore(filepath.Join(dataDir, "templates"))

	h := handlers.NewHandlers(templates, history, cfg.Export.HistoryLimit)

	s := &Server{
		router:  gin.Default(),
		history: history,
	}
	s.setupRoutes(h)
	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(h *handlers.Handlers) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		h.RegisterRoutes(api)
	}
}

// Run 启动服务
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 释放持久化资源
func (s *Server) Close() error {
	if s.history != nil {
		return s.history.Close()
	}
	return nil
}
