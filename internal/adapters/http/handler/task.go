package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ogurasousui/hr-selfservice/internal/core/auth"
	"github.com/ogurasousui/hr-selfservice/internal/core/task"
)

// TaskHandler はタスク一覧と提出のエンドポイントを提供します。
type TaskHandler struct {
	uc task.UseCase
}

// NewTaskHandler は TaskHandler を生成します。
func NewTaskHandler(uc task.UseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

type taskResponse struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
	Deadline         *string `json:"deadline"`
	RejectionComment string  `json:"rejection_comment,omitempty"`
}

// List は呼び出し元社員に割り当てられたタスクを期限昇順で返します。
func (h *TaskHandler) List(c *gin.Context) {
	accountID, ok := AccountIDFromContext(c)
	if !ok {
		writeError(c, auth.ErrInvalidToken)
		return
	}

	tasks, err := h.uc.ListAssigned(c.Request.Context(), accountID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, toTaskResponse(t))
	}

	c.JSON(http.StatusOK, response)
}

// Submit はタスクを submitted へ遷移させます。
func (h *TaskHandler) Submit(c *gin.Context) {
	accountID, ok := AccountIDFromContext(c)
	if !ok {
		writeError(c, auth.ErrInvalidToken)
		return
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, task.ErrInvalidTaskID)
		return
	}

	if err := h.uc.Submit(c.Request.Context(), accountID, taskID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task submitted successfully"})
}

func toTaskResponse(t *task.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
	if t.Deadline != nil {
		deadline := t.Deadline.Format(dateLayout)
		resp.Deadline = &deadline
	}
	if t.RejectionComment != nil {
		resp.RejectionComment = *t.RejectionComment
	}
	return resp
}
