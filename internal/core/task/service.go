package task

import (
	"context"
	"time"

	"github.com/ogurasousui/hr-selfservice/internal/core/employee"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service はタスクに関するユースケースをまとめます。
type Service struct {
	repo      Repository
	employees employee.Resolver
	clock     Clock
	tx        TransactionManager
}

// UseCase はタスクユースケースの公開インターフェースです。
type UseCase interface {
	ListAssigned(ctx context.Context, accountID int64) ([]*Task, error)
	Submit(ctx context.Context, accountID, taskID int64) error
}

// NewService は Service を生成します。
func NewService(repo Repository, employees employee.Resolver, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, employees: employees, clock: clock, tx: tx}
}

// ListAssigned は呼び出し元アカウントの社員に割り当てられたタスクを返します。
func (s *Service) ListAssigned(ctx context.Context, accountID int64) ([]*Task, error) {
	emp, err := s.employees.ResolveByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAssignee(ctx, emp.ID)
}

// Submit はタスクを submitted へ遷移させます。所有権確認と状態遷移は
// 同一トランザクション内で評価されるため、同時提出でも遷移は一度だけです。
// 他人のタスクと存在しないタスクはどちらも ErrTaskNotFound になります。
func (s *Service) Submit(ctx context.Context, accountID, taskID int64) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.employees.ResolveByAccount(txCtx, accountID)
		if err != nil {
			return err
		}

		updated, err := s.repo.SubmitOwned(txCtx, taskID, emp.ID, s.clock.Now())
		if err != nil {
			return err
		}
		if updated {
			return nil
		}

		owned, err := s.repo.ExistsOwned(txCtx, taskID, emp.ID)
		if err != nil {
			return err
		}
		if owned {
			return ErrTaskNotSubmittable
		}
		return ErrTaskNotFound
	})
}
