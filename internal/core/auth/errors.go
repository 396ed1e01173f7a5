package auth

import "errors"

var (
	// ErrInvalidToken はトークンが検証できない場合に返却されます。
	// 形式不正・署名不一致・アルゴリズム不正・期限切れは呼び出し側へ区別して伝えません。
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrInvalidCredentials はログインに失敗した場合に返却されます。
	// ユーザー名不明とパスワード不一致は区別しません。
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)
