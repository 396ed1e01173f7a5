package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig はルーター構築に必要なハンドラー群です。
type RouterConfig struct {
	Verifier   TokenVerifier
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Attendance *AttendanceHandler
	Task       *TaskHandler
}

// NewRouter はエンドポイント一式を備えた gin エンジンを構築します。
// /health と /auth/login 以外はすべて Bearer トークンを要求します。
func NewRouter(cfg RouterConfig) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Authorization", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	engine.GET("/health", Health)
	engine.POST("/auth/login", cfg.Auth.Login)

	authorized := engine.Group("/", RequireAuth(cfg.Verifier))
	{
		authorized.GET("/profile", cfg.Profile.Get)
		authorized.GET("/attendance", cfg.Attendance.List)
		authorized.GET("/tasks", cfg.Task.List)
		authorized.POST("/tasks/:id/submit", cfg.Task.Submit)
	}

	return engine
}
