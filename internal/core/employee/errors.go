package employee

import "errors"

var (
	// ErrEmployeeNotFound はアカウントに紐づく社員が存在しない場合に返却されます。
	// 認証失敗とは別の条件であり、HTTP 境界では 404 に対応します。
	ErrEmployeeNotFound = errors.New("employee: not found")
	// ErrInvalidAccountID はアカウント ID が不正な場合に返却されます。
	ErrInvalidAccountID = errors.New("employee: invalid account id")
)
