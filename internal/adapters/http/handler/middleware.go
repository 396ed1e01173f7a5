package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ogurasousui/hr-selfservice/internal/core/auth"
)

const (
	accountIDKey       = "authAccountID"
	requestIDKey       = "requestID"
	requestIDHeader    = "X-Request-Id"
	bearerPrefix       = "Bearer "
	authorizationField = "Authorization"
)

// TokenVerifier はリクエストに付与されたトークンを検証します。
type TokenVerifier interface {
	Verify(tokenString string) (int64, error)
}

// RequestID は各リクエストに一意な ID を付与します。
// クライアント指定の ID は信用せず常に新規発行します。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequireAuth は Authorization ヘッダーの Bearer トークンを検証し、
// アカウント ID をコンテキストへ格納します。検証はトークンのみで完結し、
// ヘッダー欠如・形式不正・検証失敗はいずれも 401 になります。
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationField)
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c)
			return
		}

		tokenString := header[len(bearerPrefix):]
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		accountID, err := verifier.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

// AccountIDFromContext は RequireAuth が格納したアカウント ID を取り出します。
func AccountIDFromContext(c *gin.Context) (int64, bool) {
	value, ok := c.Get(accountIDKey)
	if !ok {
		return 0, false
	}
	accountID, ok := value.(int64)
	return accountID, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
}
