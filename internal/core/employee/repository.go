package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	// FindByAccountID はアカウントに紐づく唯一の社員を取得します。
	FindByAccountID(ctx context.Context, accountID int64) (*Employee, error)
	// ProfileByAccountID は部署名・上長名・上長メールを含むプロフィールを取得します。
	ProfileByAccountID(ctx context.Context, accountID int64) (*Profile, error)
}

// Resolver は認証済みアカウントを社員レコードへ解決します。
// 他ドメインのユースケースはこのインターフェース越しに所有者を確定します。
type Resolver interface {
	ResolveByAccount(ctx context.Context, accountID int64) (*Employee, error)
}
