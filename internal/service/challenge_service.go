//go:generate mockery --name ChallengeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_titan_quest/internal/content"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/progression"
	"go_titan_quest/internal/repository"
	"go_titan_quest/internal/webutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChallengeService はボス戦の召喚と結果反映を扱います。
// 召喚したボス戦はサーバーに保存せず、結果送信時にクライアントが報酬XPを添えて送る。
type ChallengeService interface {
	Summon(ctx context.Context, playerID uuid.UUID) (*model.Challenge, error)
	Resolve(ctx context.Context, playerID uuid.UUID, req *model.ResolveChallengeRequest) (*model.ResolveChallengeResponse, error)
}

type challengeService struct {
	store    *profileStore
	provider content.Provider
	clock    Clock
}

func NewChallengeService(db *gorm.DB, profileRepo repository.ProfileRepository, provider content.Provider, cache *SnapshotCache, clock Clock) ChallengeService {
	return &challengeService{
		store:    newProfileStore(db, profileRepo, cache),
		provider: provider,
		clock:    clock,
	}
}

func (s *challengeService) Summon(ctx context.Context, playerID uuid.UUID) (*model.Challenge, error) {
	logger := middleware.GetLogger(ctx)

	profile, err := s.store.get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	challenge, err := s.provider.Challenge(ctx, *profile)
	if err != nil {
		logger.Error("Failed to summon challenge", "error", err)
		return nil, errContentUnavailable(err)
	}
	logger.Info("Challenge summoned", "title", challenge.Title, "difficulty", challenge.Difficulty, "xp_reward", challenge.XPReward)
	return challenge, nil
}

// Resolve は結果を履歴に追記し、獲得XPをグローバルトラックに反映します
func (s *challengeService) Resolve(ctx context.Context, playerID uuid.UUID, req *model.ResolveChallengeRequest) (*model.ResolveChallengeResponse, error) {
	logger := middleware.GetLogger(ctx)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}

	result := model.ChallengeResult{
		Date:           today(s.clock),
		ChallengeTitle: req.ChallengeTitle,
		Result:         req.Result,
		Record:         req.Record,
		XPGained:       progression.ChallengeXP(req.XPReward, req.Result),
	}

	var outcome progression.Outcome
	profile, err := s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		next, out := progression.ResolveChallenge(p, result)
		outcome = out
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Challenge resolved", "title", result.ChallengeTitle, "result", result.Result, "xp_gained", result.XPGained, "global_leveled_up", outcome.GlobalLeveledUp)
	return &model.ResolveChallengeResponse{
		Profile:         profile,
		Result:          &result,
		GlobalLeveledUp: outcome.GlobalLeveledUp,
	}, nil
}
