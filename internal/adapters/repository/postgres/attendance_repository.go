package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/ogurasousui/hr-selfservice/internal/core/attendance"
	pgdb "github.com/ogurasousui/hr-selfservice/internal/platform/db/postgres"
)

// AttendanceRepository は PostgreSQL を利用した勤怠レコード永続化の実装です。
type AttendanceRepository struct {
	pool pgdb.Queryer
}

// NewAttendanceRepository は AttendanceRepository を生成します。
func NewAttendanceRepository(pool pgdb.Queryer) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// ListByEmployee は指定社員の勤怠を日付降順で最大 limit 件返します。
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]*attendance.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_id, date, clock_in, clock_out
          FROM attendance_records
         WHERE employee_id = $1
         ORDER BY date DESC
         LIMIT $2
    `, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*attendance.Record, 0, limit)
	for rows.Next() {
		var (
			id       int64
			empID    int64
			date     time.Time
			clockIn  sql.NullTime
			clockOut sql.NullTime
		)

		if err := rows.Scan(&id, &empID, &date, &clockIn, &clockOut); err != nil {
			return nil, err
		}

		records = append(records, &attendance.Record{
			ID:         id,
			EmployeeID: empID,
			Date:       date,
			ClockIn:    nullableTime(clockIn),
			ClockOut:   nullableTime(clockOut),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
