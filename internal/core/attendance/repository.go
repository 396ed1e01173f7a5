package attendance

import "context"

// Repository は勤怠レコード永続化の抽象です。
type Repository interface {
	// ListByEmployee は指定社員のレコードを日付降順で最大 limit 件返します。
	ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]*Record, error)
}
