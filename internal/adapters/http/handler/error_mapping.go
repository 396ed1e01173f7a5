package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogurasousui/hr-selfservice/internal/core/auth"
	"github.com/ogurasousui/hr-selfservice/internal/core/employee"
	"github.com/ogurasousui/hr-selfservice/internal/core/task"
)

// writeError はドメインエラーを HTTP ステータスへ写像します。
// 未分類のエラーは詳細をログへ残し、レスポンスには定型文のみを返します。
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, employee.ErrEmployeeNotFound), errors.Is(err, task.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, task.ErrTaskNotSubmittable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, task.ErrInvalidTaskID), errors.Is(err, employee.ErrInvalidAccountID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		requestID, _ := c.Get(requestIDKey)
		log.Printf("internal error: request_id=%v path=%s err=%v", requestID, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
