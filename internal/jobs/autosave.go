package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go_titan_quest/internal/config"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/repository"
	"go_titan_quest/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// autosaveTimeout は1回の自動保存にかける上限
const autosaveTimeout = time.Minute

// AutoSaver はキャッシュ上で書き込みのあったプロフィールを定期的に丸ごと書き戻します。
// 保存に失敗してもログを出すだけで、次の周期で再度保存する。
// 一周期の間読み書きされなかったプレイヤーはキャッシュから外す。
type AutoSaver struct {
	db       *gorm.DB
	repo     repository.ProfileRepository
	cache    *service.SnapshotCache
	logger   *slog.Logger
	interval time.Duration

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// Result は1回の自動保存の結果
type Result struct {
	Saved   int
	Failed  int
	Evicted int
}

func NewAutoSaver(db *gorm.DB, repo repository.ProfileRepository, cache *service.SnapshotCache, logger *slog.Logger, interval time.Duration) *AutoSaver {
	if interval <= 0 {
		interval = config.DefaultAutosaveInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AutoSaver{
		db:       db,
		repo:     repo,
		cache:    cache,
		logger:   logger.With(slog.String("job", "autosave")),
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (a *AutoSaver) Start() {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	a.mu.Unlock()

	a.wg.Add(1)
	go a.run()
	a.logger.Info("Autosave started", slog.Duration("interval", a.interval))
}

// Stop はループを止め、最後に1回保存してから戻ります
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	a.mu.Unlock()

	close(a.stopCh)
	a.wg.Wait()

	a.tick()
	a.logger.Info("Autosave stopped")
}

func (a *AutoSaver) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

func (a *AutoSaver) run() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.tick()
		case <-a.stopCh:
			return
		}
	}
}

func (a *AutoSaver) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), autosaveTimeout)
	defer cancel()

	res := a.RunOnce(ctx)
	if res.Saved == 0 && res.Failed == 0 && res.Evicted == 0 {
		a.logger.Debug("Autosave: nothing to save")
		return
	}
	level := slog.LevelInfo
	if res.Failed > 0 {
		level = slog.LevelWarn
	}
	a.logger.Log(ctx, level, "Autosave finished", slog.Int("saved", res.Saved), slog.Int("failed", res.Failed), slog.Int("evicted", res.Evicted))
}

// RunOnce は保存待ちのプロフィールを1回保存し、その後アイドルなエントリを捨てます。
// 保存中に ResetJourney で消えたプレイヤーは飛ばす。
func (a *AutoSaver) RunOnce(ctx context.Context) Result {
	ctx = middleware.WithLogger(ctx, a.logger)

	var res Result
	for _, playerID := range a.cache.Dirty() {
		if ctx.Err() != nil {
			a.logger.Warn("Autosave interrupted", slog.Any("error", ctx.Err()))
			break
		}
		saved, err := a.saveOne(ctx, playerID)
		if err != nil {
			res.Failed++
			a.logger.Error("Autosave failed for player", slog.String("player_id", playerID.String()), slog.Any("error", err))
			continue
		}
		if saved {
			res.Saved++
		}
	}
	res.Evicted = a.cache.Sweep()
	return res
}

func (a *AutoSaver) saveOne(ctx context.Context, playerID uuid.UUID) (bool, error) {
	unlock := a.cache.Lock(playerID)
	defer unlock()

	profile, ok := a.cache.Get(playerID)
	if !ok {
		return false, nil
	}
	if err := a.repo.Save(ctx, a.db.WithContext(ctx), playerID, &profile); err != nil {
		return false, err
	}
	a.cache.MarkClean(playerID)
	return true, nil
}
