package employee

import "time"

// Employee は社員エンティティです。アカウントとは 1:1 で紐づきます。
type Employee struct {
	ID           int64
	AccountID    int64
	EmployeeCode string
	FirstName    string
	LastName     string
	Position     string
	HireDate     time.Time
	DepartmentID *int64
	ManagerID    *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName は姓名を結合した表示名を返します。
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Profile は本人向けプロフィールビューです。
// 部署・上長の JOIN 脚が欠けている場合、対応するフィールドは nil になります。
type Profile struct {
	EmployeeID     int64
	FirstName      string
	LastName       string
	Position       string
	HireDate       time.Time
	DepartmentName *string
	ManagerName    *string
	ManagerEmail   *string
}
