package task

import "errors"

var (
	// ErrTaskNotFound はタスクが存在しない、または呼び出し元の社員に
	// 割り当てられていない場合に返却されます。両者を区別しないことで
	// 他人のタスクの存在を漏らしません。
	ErrTaskNotFound = errors.New("task: not found")
	// ErrTaskNotSubmittable は本人のタスクだが提出可能な状態にない場合に返却されます。
	ErrTaskNotSubmittable = errors.New("task: not in a submittable state")
	// ErrInvalidTaskID はタスク ID が不正な場合に返却されます。
	ErrInvalidTaskID = errors.New("task: invalid id")
)
