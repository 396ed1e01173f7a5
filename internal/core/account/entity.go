package account

import "time"

// Role はアカウントの役割を表します。
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Account はログインアカウントエンティティです。
// 社員レコード (employee.Employee) とは 1:1 で紐づきますが、
// 紐づく社員が存在しないアカウントも許容されます。
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
