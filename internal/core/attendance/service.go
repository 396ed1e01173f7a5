package attendance

import (
	"context"

	"github.com/ogurasousui/hr-selfservice/internal/core/employee"
)

// 一覧は直近分のみを返す。上限を超える limit は黙って切り詰める。
const (
	defaultListLimit = 30
	maxListLimit     = 30
)

// Service は勤怠に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	employees employee.Resolver
}

// UseCase は勤怠ユースケースの公開インターフェースです。
type UseCase interface {
	ListRecent(ctx context.Context, accountID int64, limit int) ([]*Record, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, employees employee.Resolver) *Service {
	return &Service{repo: repo, employees: employees}
}

// ListRecent は呼び出し元アカウントの社員に紐づく勤怠を新しい日付順に返します。
// 社員が紐づいていないアカウントは employee.ErrEmployeeNotFound になります。
func (s *Service) ListRecent(ctx context.Context, accountID int64, limit int) ([]*Record, error) {
	emp, err := s.employees.ResolveByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	return s.repo.ListByEmployee(ctx, emp.ID, limit)
}
