package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/ogurasousui/hr-selfservice/internal/core/task"
	pgdb "github.com/ogurasousui/hr-selfservice/internal/platform/db/postgres"
)

// TaskRepository は PostgreSQL を利用したタスク永続化の実装です。
type TaskRepository struct {
	pool pgdb.Queryer
}

// NewTaskRepository は TaskRepository を生成します。
func NewTaskRepository(pool pgdb.Queryer) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// ListByAssignee は担当タスクを deadline 昇順 (NULL は末尾) で返します。
func (r *TaskRepository) ListByAssignee(ctx context.Context, employeeID int64) ([]*task.Task, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, title, description, status, deadline, rejection_comment,
               assigned_to, created_at, updated_at
          FROM tasks
         WHERE assigned_to = $1
         ORDER BY deadline ASC NULLS LAST, id ASC
    `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*task.Task, 0)
	for rows.Next() {
		var (
			id               int64
			title            string
			description      string
			status           string
			deadline         sql.NullTime
			rejectionComment sql.NullString
			assignedTo       int64
			createdAt        time.Time
			updatedAt        time.Time
		)

		if err := rows.Scan(&id, &title, &description, &status, &deadline, &rejectionComment, &assignedTo, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		tasks = append(tasks, &task.Task{
			ID:               id,
			Title:            title,
			Description:      description,
			Status:           task.Status(status),
			Deadline:         nullableTime(deadline),
			RejectionComment: nullableString(rejectionComment),
			AssignedTo:       assignedTo,
			CreatedAt:        createdAt,
			UpdatedAt:        updatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// SubmitOwned は所有権と状態前提条件をひとつの UPDATE 文で評価します。
// 条件を満たさない場合は 0 行更新となり false を返します。
func (r *TaskRepository) SubmitOwned(ctx context.Context, taskID, employeeID int64, now time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE tasks
           SET status = $1,
               updated_at = $2
         WHERE id = $3
           AND assigned_to = $4
           AND status = ANY($5)
    `, string(task.StatusSubmitted), now, taskID, employeeID, submittableStatusStrings())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// ExistsOwned はタスクが存在し指定社員に割り当てられているかを返します。
func (r *TaskRepository) ExistsOwned(ctx context.Context, taskID, employeeID int64) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM tasks WHERE id = $1 AND assigned_to = $2
        )
    `, taskID, employeeID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func submittableStatusStrings() []string {
	statuses := task.SubmittableStatuses()
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}
