package task

import (
	"context"
	"time"
)

// Repository はタスク永続化の抽象です。
type Repository interface {
	// ListByAssignee は担当タスクを deadline 昇順 (NULL は末尾) で返します。
	ListByAssignee(ctx context.Context, employeeID int64) ([]*Task, error)
	// SubmitOwned は所有権と状態前提条件の両方を満たす場合に限り
	// status を submitted に更新し、更新できたかを返します。
	// 条件判定と更新は単一の UPDATE 文で行われ、競合時も二重遷移しません。
	SubmitOwned(ctx context.Context, taskID, employeeID int64, now time.Time) (bool, error)
	// ExistsOwned はタスクが存在し、かつ指定社員に割り当てられているかを返します。
	ExistsOwned(ctx context.Context, taskID, employeeID int64) (bool, error)
}
