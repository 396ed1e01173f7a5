package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-selfservice/internal/core/employee"
	pgdb "github.com/ogurasousui/hr-selfservice/internal/platform/db/postgres"
)

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
// すべての読み取りは呼び出し元のアカウント ID を起点に行われます。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// FindByAccountID はアカウントに紐づく唯一の社員を取得します。
func (r *EmployeeRepository) FindByAccountID(ctx context.Context, accountID int64) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, account_id, employee_code, first_name, last_name, position,
               hire_date, department_id, manager_id, created_at, updated_at
          FROM employees
         WHERE account_id = $1
         LIMIT 1
    `, accountID)

	return scanEmployee(row)
}

// ProfileByAccountID は部署・上長・上長アカウントを LEFT JOIN したプロフィールを取得します。
// JOIN の欠損脚は nil フィールドになり、社員行そのものの欠如のみが ErrEmployeeNotFound です。
func (r *EmployeeRepository) ProfileByAccountID(ctx context.Context, accountID int64) (*employee.Profile, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT e.id,
               e.first_name,
               e.last_name,
               e.position,
               e.hire_date,
               d.name,
               m.first_name || ' ' || m.last_name,
               ma.email
          FROM employees e
          LEFT JOIN departments d ON d.id = e.department_id
          LEFT JOIN employees m ON m.id = e.manager_id
          LEFT JOIN accounts ma ON ma.id = m.account_id
         WHERE e.account_id = $1
         LIMIT 1
    `, accountID)

	var (
		id             int64
		firstName      string
		lastName       string
		position       string
		hireDate       time.Time
		departmentName sql.NullString
		managerName    sql.NullString
		managerEmail   sql.NullString
	)

	if err := row.Scan(&id, &firstName, &lastName, &position, &hireDate, &departmentName, &managerName, &managerEmail); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Profile{
		EmployeeID:     id,
		FirstName:      firstName,
		LastName:       lastName,
		Position:       position,
		HireDate:       hireDate,
		DepartmentName: nullableString(departmentName),
		ManagerName:    nullableString(managerName),
		ManagerEmail:   nullableString(managerEmail),
	}, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id           int64
		accountID    int64
		code         string
		firstName    string
		lastName     string
		position     string
		hireDate     time.Time
		departmentID sql.NullInt64
		managerID    sql.NullInt64
		createdAt    time.Time
		updatedAt    time.Time
	)

	if err := row.Scan(
		&id,
		&accountID,
		&code,
		&firstName,
		&lastName,
		&position,
		&hireDate,
		&departmentID,
		&managerID,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		ID:           id,
		AccountID:    accountID,
		EmployeeCode: code,
		FirstName:    firstName,
		LastName:     lastName,
		Position:     position,
		HireDate:     hireDate,
		DepartmentID: nullableInt64(departmentID),
		ManagerID:    nullableInt64(managerID),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
