package account

import "context"

// Repository はアカウント永続化の抽象です。
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
}
