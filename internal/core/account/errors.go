package account

import "errors"

var (
	// ErrAccountNotFound はアカウントが存在しない場合に返却されます。
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidID はIDが不正な場合に返却されます。
	ErrInvalidID = errors.New("account: invalid id")
)
