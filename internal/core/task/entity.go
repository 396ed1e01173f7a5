package task

import "time"

// Status はタスクの状態を表します。
// assigned → in_progress → submitted と遷移し、差し戻しは rejected として
// rejection_comment を伴います。rejected からは再提出が可能です。
type Status string

const (
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
)

// SubmittableStatuses は submitted へ遷移できる状態の一覧です。
func SubmittableStatuses() []Status {
	return []Status{StatusAssigned, StatusInProgress, StatusRejected}
}

// Task はタスクエンティティです。担当者 (AssignedTo) は社員 ID です。
type Task struct {
	ID               int64
	Title            string
	Description      string
	Status           Status
	Deadline         *time.Time
	RejectionComment *string
	AssignedTo       int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanSubmit は現在の状態から submitted へ遷移できるかを返します。
func (t *Task) CanSubmit() bool {
	for _, s := range SubmittableStatuses() {
		if t.Status == s {
			return true
		}
	}
	return false
}
