package employee

import "context"

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	ResolveByAccount(ctx context.Context, accountID int64) (*Employee, error)
	GetProfile(ctx context.Context, accountID int64) (*Profile, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ResolveByAccount はアカウント ID から社員を解決します。
// 紐づく社員が存在しない場合は ErrEmployeeNotFound を返します。
func (s *Service) ResolveByAccount(ctx context.Context, accountID int64) (*Employee, error) {
	if accountID <= 0 {
		return nil, ErrInvalidAccountID
	}
	return s.repo.FindByAccountID(ctx, accountID)
}

// GetProfile は本人のプロフィールを取得します。
// 社員行そのものが無い場合のみ ErrEmployeeNotFound となり、
// 部署や上長の欠損はエラーではなく nil フィールドとして表れます。
func (s *Service) GetProfile(ctx context.Context, accountID int64) (*Profile, error) {
	if accountID <= 0 {
		return nil, ErrInvalidAccountID
	}
	return s.repo.ProfileByAccountID(ctx, accountID)
}
