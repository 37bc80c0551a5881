package service

import (
	"fmt"
	"time"
	_ "time/tzdata" // tzdata の無いコンテナでもタイムゾーンを解決する

	"go_titan_quest/internal/model"
)

// Clock はデイリープランの「今日」を決める時計
type Clock interface {
	Now() time.Time
}

type zonedClock struct {
	loc *time.Location
}

func (c zonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// NewClock は設定のタイムゾーンで動く Clock を返します。"Local" や空文字はサーバーのローカル時刻。
func NewClock(timezone string) (Clock, error) {
	if timezone == "" || timezone == "Local" {
		return zonedClock{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return zonedClock{loc: loc}, nil
}

// today は Clock の現在日付を YYYY-MM-DD で返します
func today(c Clock) string {
	return c.Now().Format(model.RecordDateLayout)
}

// daysBefore は YYYY-MM-DD の日付から n 日前の日付を返します
func daysBefore(date string, n int) (string, error) {
	t, err := time.Parse(model.RecordDateLayout, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -n).Format(model.RecordDateLayout), nil
}
