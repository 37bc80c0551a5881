package progression

import (
	"go_titan_quest/internal/model"
)

// 以下はプロフィールの履歴系フィールドを書き換える小さなヘルパー。
// いずれも新しいスライスを作り、渡されたプロフィールのスライスは変更しない。

// HasTipForDate はその日のヘルスアドバイスが既にあるかを返します
func HasTipForDate(p model.Profile, date string) bool {
	for _, t := range p.TipsHistory {
		if t.Date == date {
			return true
		}
	}
	return false
}

// PrependTip は新しいアドバイスを履歴の先頭に追加します (新しい順)
func PrependTip(p model.Profile, tip model.HealthTip) model.Profile {
	tips := make([]model.HealthTip, 0, len(p.TipsHistory)+1)
	tips = append(tips, tip)
	tips = append(tips, p.TipsHistory...)
	p.TipsHistory = tips
	return p
}

// AppendReview は週次レビューを履歴の末尾に追加します
func AppendReview(p model.Profile, review model.WeeklyReview) model.Profile {
	reviews := make([]model.WeeklyReview, 0, len(p.WeeklyReviews)+1)
	reviews = append(reviews, p.WeeklyReviews...)
	p.WeeklyReviews = append(reviews, review)
	return p
}

// LogWeight は体重を記録します。同じ日付の記録があれば置き換える。
func LogWeight(p model.Profile, entry model.WeightEntry) model.Profile {
	history := make([]model.WeightEntry, 0, len(p.History)+1)
	replaced := false
	for _, h := range p.History {
		if h.Date == entry.Date {
			history = append(history, entry)
			replaced = true
			continue
		}
		history = append(history, h)
	}
	if !replaced {
		history = append(history, entry)
	}
	p.History = history
	p.Weight = entry.Weight
	return p
}

// WeightChangeSince は指定日以降の体重変化 (最新 - 期間内最古) を返します
func WeightChangeSince(p model.Profile, since string) float64 {
	var first, last *model.WeightEntry
	for i := range p.History {
		h := &p.History[i]
		if h.Date < since {
			continue
		}
		if first == nil || h.Date < first.Date {
			first = h
		}
		if last == nil || h.Date >= last.Date {
			last = h
		}
	}
	if first == nil || last == nil {
		return 0
	}
	return last.Weight - first.Weight
}
