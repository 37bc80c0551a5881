//go:generate mockery --name ProfileService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/progression"
	"go_titan_quest/internal/repository"
	"go_titan_quest/internal/webutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	Onboard(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingResponse, error)
	GetProfile(ctx context.Context, playerID uuid.UUID) (*model.Profile, error)
	UpdateSettings(ctx context.Context, playerID uuid.UUID, req *model.UpdateSettingsRequest) (*model.Profile, error)
	UpdateTrainingStyle(ctx context.Context, playerID uuid.UUID, req *model.UpdateTrainingStyleRequest) (*model.Profile, error)
	UpdateFaction(ctx context.Context, playerID uuid.UUID, req *model.UpdateFactionRequest) (*model.Profile, error)
	LogWeight(ctx context.Context, playerID uuid.UUID, req *model.LogWeightRequest) (*model.Profile, error)
	ResetJourney(ctx context.Context, playerID uuid.UUID) error
	PreviewClass(age int) (*model.ClassPreviewResponse, error)
}

type profileService struct {
	db       *gorm.DB
	store    *profileStore
	planRepo repository.PlanRepository
	auth     AuthService
	clock    Clock
}

func NewProfileService(db *gorm.DB, profileRepo repository.ProfileRepository, planRepo repository.PlanRepository, auth AuthService, cache *SnapshotCache, clock Clock) ProfileService {
	return &profileService{
		db:       db,
		store:    newProfileStore(db, profileRepo, cache),
		planRepo: planRepo,
		auth:     auth,
		clock:    clock,
	}
}

// Onboard はキャラクターを作成し、アクセストークンを発行します
func (s *profileService) Onboard(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingResponse, error) {
	logger := middleware.GetLogger(ctx)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "名前を入力してください。", "name", model.ErrInvalidInput)
	}

	playerID := uuid.New()
	profile := progression.NewProfile(*req, today(s.clock))

	var token string
	unlock := s.store.cache.Lock(playerID)
	defer unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.store.repo.Create(ctx, tx, playerID, &profile); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during profile creation", "error", err, "player_id", playerID)
				return model.NewAppError("DUPLICATE_PLAYER", "プレイヤーは既に作成されています。", "", model.ErrConflict)
			}
			logger.Error("Failed to create profile in DB", "error", err)
			return errInternal(err)
		}

		// トークンを発行できなければ作成ごとロールバックする
		issued, err := s.auth.IssueToken(playerID, profile.Name)
		if err != nil {
			logger.Error("Failed to issue access token", "error", err, "player_id", playerID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
		}
		token = issued
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.cache.Put(playerID, profile)
	logger.Info("Player onboarded", "player_id", playerID, "class", profile.UserClass, "faction", profile.Faction)

	return &model.OnboardingResponse{
		PlayerID:    playerID.String(),
		AccessToken: token,
		Profile:     &profile,
	}, nil
}

func (s *profileService) GetProfile(ctx context.Context, playerID uuid.UUID) (*model.Profile, error) {
	return s.store.get(ctx, playerID)
}

func (s *profileService) UpdateSettings(ctx context.Context, playerID uuid.UUID, req *model.UpdateSettingsRequest) (*model.Profile, error) {
	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		p.Settings = model.UserSettings{
			SoundEnabled:        *req.SoundEnabled,
			Volume:              *req.Volume,
			NotificationEnabled: *req.NotificationEnabled,
		}
		return p, nil
	})
}

func (s *profileService) UpdateTrainingStyle(ctx context.Context, playerID uuid.UUID, req *model.UpdateTrainingStyleRequest) (*model.Profile, error) {
	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		p.TrainingStyle = req.TrainingStyle
		return p, nil
	})
}

// UpdateFaction は勢力を変更します。今日のプランはそのままで、翌日以降の生成内容に反映される。
func (s *profileService) UpdateFaction(ctx context.Context, playerID uuid.UUID, req *model.UpdateFactionRequest) (*model.Profile, error) {
	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		p.Faction = req.Faction
		return p, nil
	})
}

func (s *profileService) LogWeight(ctx context.Context, playerID uuid.UUID, req *model.LogWeightRequest) (*model.Profile, error) {
	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	entry := model.WeightEntry{Date: today(s.clock), Weight: req.Weight, Calories: req.Calories}
	return s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		return progression.LogWeight(p, entry), nil
	})
}

// ResetJourney はプロフィールと全てのデイリープランを削除します (1トランザクション)。
// 未登録のプレイヤーでもエラーにしない。
func (s *profileService) ResetJourney(ctx context.Context, playerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	var deletedPlans int64

	unlock := s.store.cache.Lock(playerID)
	defer unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.store.repo.Delete(ctx, tx, playerID); err != nil {
			logger.Error("Failed to delete profile", "error", err)
			return errInternal(err)
		}
		n, err := s.planRepo.DeleteAll(ctx, tx, playerID)
		if err != nil {
			logger.Error("Failed to delete daily plans", "error", err)
			return errInternal(err)
		}
		deletedPlans = n
		return nil
	})
	if err != nil {
		return err
	}

	s.store.cache.Delete(playerID)
	logger.Info("Journey reset", "player_id", playerID, "deleted_plans", deletedPlans)
	return nil
}

// PreviewClass はオンボーディング前に年齢からクラスを判定します
func (s *profileService) PreviewClass(age int) (*model.ClassPreviewResponse, error) {
	if age < 1 || age > 120 {
		return nil, model.NewAppError("VALIDATION_ERROR", "年齢は1から120の範囲で指定してください。", "age", model.ErrInvalidInput)
	}
	class, banded := progression.DeriveClass(age)
	if !banded {
		class = progression.DefaultClass
	}
	return &model.ClassPreviewResponse{Age: age, UserClass: class, Banded: banded}, nil
}
