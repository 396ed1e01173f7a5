package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health は稼働確認用のエンドポイントです。認証を要求しません。
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
