package service

import (
	"context"
	"errors"

	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// errInternal はクライアントには詳細を見せない 500 用の AppError を返します
func errInternal(err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
}

// errInvalid は入力エラーを AppError に包みます。既に AppError ならそのまま返す。
func errInvalid(code string, err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrInvalidInput) {
		return model.NewAppError(code, "入力値が不正です。", "", err)
	}
	return errInternal(err)
}

func errContentUnavailable(err error) error {
	return model.NewAppError("CONTENT_UNAVAILABLE", "コンテンツを生成できませんでした。時間をおいて再度お試しください。", "", errors.Join(model.ErrContentUnavailable, err))
}

// profileStore はサービス間で共通のプロフィール読み書きをまとめたものです。
// 読み書きした最新値は SnapshotCache にも反映する。
type profileStore struct {
	db    *gorm.DB
	repo  repository.ProfileRepository
	cache *SnapshotCache
}

func newProfileStore(db *gorm.DB, repo repository.ProfileRepository, cache *SnapshotCache) *profileStore {
	if cache == nil {
		cache = NewSnapshotCache()
	}
	return &profileStore{db: db, repo: repo, cache: cache}
}

// load は tx 上でプロフィールを読み込みます。未登録なら PLAYER_NOT_FOUND。
func (s *profileStore) load(ctx context.Context, tx *gorm.DB, playerID uuid.UUID) (*model.Profile, error) {
	profile, err := s.repo.FindByPlayerID(ctx, tx, playerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			middleware.GetLogger(ctx).Warn("Profile not found", "player_id", playerID)
			return nil, model.NewAppError("PLAYER_NOT_FOUND", "プレイヤーが見つかりません。キャラクターを作成してください。", "", model.ErrPlayerNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to load profile", "error", err, "player_id", playerID)
		return nil, errInternal(err)
	}
	return profile, nil
}

// get はトランザクション外でプロフィールを読み込み、キャッシュを更新します
func (s *profileStore) get(ctx context.Context, playerID uuid.UUID) (*model.Profile, error) {
	unlock := s.cache.Lock(playerID)
	defer unlock()

	profile, err := s.load(ctx, s.db.WithContext(ctx), playerID)
	if err != nil {
		return nil, err
	}
	s.cache.Remember(playerID, *profile)
	return profile, nil
}

// update はプロフィールを読み込み、mutate の結果を丸ごと保存します (1トランザクション)。
// mutate がエラーを返した場合は何も保存しない。
func (s *profileStore) update(ctx context.Context, playerID uuid.UUID, mutate func(model.Profile) (model.Profile, error)) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var updated model.Profile

	unlock := s.cache.Lock(playerID)
	defer unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.load(ctx, tx, playerID)
		if err != nil {
			return err
		}
		next, err := mutate(*current)
		if err != nil {
			return err
		}
		if err := s.repo.Save(ctx, tx, playerID, &next); err != nil {
			logger.Error("Failed to save profile", "error", err, "player_id", playerID)
			return errInternal(err)
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Put(playerID, updated)
	return &updated, nil
}
