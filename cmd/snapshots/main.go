// snapshots は保存済みスナップショットを確認するための管理用コマンドです。
//
//	go run ./cmd/snapshots list
//	go run ./cmd/snapshots show -player <uuid> [-path stats.STR]
//	go run ./cmd/snapshots plans -player <uuid> -from 2026-10-12 -to 2026-10-18
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go_titan_quest/internal/config"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/repository"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

const usage = `usage: snapshots [-config dir] <list|show|plans> [flags]`

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger *slog.Logger) error {
	global := flag.NewFlagSet("snapshots", flag.ContinueOnError)
	configDir := global.String("config", "configs", "config directory")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		return errors.New(usage)
	}

	if err := config.LoadConfig(*configDir); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = middleware.WithLogger(ctx, logger)

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "list":
		return listPlayers(ctx, db, out)
	case "show":
		return showProfile(ctx, db, rest, out)
	case "plans":
		return showPlans(ctx, db, rest, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func listPlayers(ctx context.Context, db *gorm.DB, out io.Writer) error {
	repo := repository.NewGormProfileRepository()
	ids, err := repo.ListPlayerIDs(ctx, db)
	if err != nil {
		return err
	}
	for _, id := range ids {
		profile, err := repo.FindByPlayerID(ctx, db, id)
		if err != nil {
			fmt.Fprintf(out, "%s\t(unreadable: %v)\n", id, err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\tLv.%d\t%s\t%s\n", id, profile.Name, profile.Level, profile.UserClass, profile.Faction)
	}
	fmt.Fprintf(out, "%d player(s)\n", len(ids))
	return nil
}

func parsePlayer(fs *flag.FlagSet, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		fs.Usage()
		return uuid.Nil, fmt.Errorf("-player must be a uuid: %w", err)
	}
	return id, nil
}

func showProfile(ctx context.Context, db *gorm.DB, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	player := fs.String("player", "", "player id")
	path := fs.String("path", "", "gjson path to print (e.g. stats.STR, tips_history.#)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parsePlayer(fs, *player)
	if err != nil {
		return err
	}

	profile, err := repository.NewGormProfileRepository().FindByPlayerID(ctx, db, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("player %s has no profile", id)
		}
		return err
	}
	return printJSON(out, profile, *path)
}

func showPlans(ctx context.Context, db *gorm.DB, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("plans", flag.ContinueOnError)
	player := fs.String("player", "", "player id")
	today := time.Now().Format(model.RecordDateLayout)
	from := fs.String("from", today, "first date (YYYY-MM-DD)")
	to := fs.String("to", today, "last date (YYYY-MM-DD)")
	path := fs.String("path", "", "gjson path to print (e.g. #.date)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parsePlayer(fs, *player)
	if err != nil {
		return err
	}

	plans, err := repository.NewGormPlanRepository().FindBetween(ctx, db, id, *from, *to)
	if err != nil {
		return err
	}
	return printJSON(out, plans, *path)
}

// printJSON は値を整形して出力します。path があれば gjson で絞り込む。
func printJSON(out io.Writer, v any, path string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	res := gjson.GetBytes(b, path)
	if !res.Exists() {
		return fmt.Errorf("path %q not found", path)
	}
	_, err = fmt.Fprintln(out, res.String())
	return err
}
