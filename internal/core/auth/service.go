package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ogurasousui/hr-selfservice/internal/core/account"
)

// Service はログインユースケースをまとめます。
type Service struct {
	accounts account.Repository
	verifier *Verifier
}

// UseCase はログインユースケースの公開インターフェースです。
type UseCase interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

// NewService は Service を生成します。
func NewService(accounts account.Repository, verifier *Verifier) *Service {
	return &Service{accounts: accounts, verifier: verifier}
}

// LoginInput はログイン時の入力です。
type LoginInput struct {
	Username string
	Password string
}

// LoginResult はログイン成功時の結果です。
type LoginResult struct {
	Token   string
	Account *account.Account
}

// Login はユーザー名とパスワードを検証し、トークンを発行します。
// アカウント不明とパスワード不一致はどちらも ErrInvalidCredentials になります。
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	acc, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.verifier.Issue(acc.ID, acc.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Account: acc}, nil
}
