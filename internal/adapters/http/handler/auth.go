package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogurasousui/hr-selfservice/internal/core/auth"
)

// AuthHandler はログインエンドポイントを提供します。
type AuthHandler struct {
	uc auth.UseCase
}

// NewAuthHandler は AuthHandler を生成します。
func NewAuthHandler(uc auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// Login はユーザー名とパスワードでトークンを発行します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.uc.Login(c.Request.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User: loginUser{
			ID:       result.Account.ID,
			Username: result.Account.Username,
		},
	})
}
