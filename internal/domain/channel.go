package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout はコマンドラインで受け付ける日付の形式
const DateLayout = "2006-01-02"

// Channel はSlackチャンネルを表すドメインモデル
type Channel struct {
	ID   string
	Name string
}

// NormalizeChannelName は先頭の "#" を取り除いたチャンネル名を返す
func NormalizeChannelName(name string) string {
	return strings.TrimLeft(strings.TrimSpace(name), "#")
}

// DateRange は日付範囲を表す値オブジェクト
// ゼロ値の側は無制限として扱う
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange はYYYY-MM-DD形式の開始日・終了日から日付範囲を作成する
// 終了日はその日の終わり（23:59:59.999999）までを含む
func ParseDateRange(from, to string) (*DateRange, error) {
	dr := &DateRange{}
	if from != "" {
		start, err := time.ParseInLocation(DateLayout, from, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, from)
		}
		dr.Start = start
	}
	if to != "" {
		end, err := time.ParseInLocation(DateLayout, to, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, to)
		}
		dr.End = end.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	if !dr.IsValid() {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, from, to)
	}
	return dr, nil
}

// IsValid は日付範囲が有効かどうかを検証する
func (dr *DateRange) IsValid() bool {
	return dr.Start.IsZero() || dr.End.IsZero() || dr.Start.Before(dr.End) || dr.Start.Equal(dr.End)
}

// IsUnbounded は両側とも無制限かどうかを返す
func (dr *DateRange) IsUnbounded() bool {
	return dr == nil || (dr.Start.IsZero() && dr.End.IsZero())
}

// Contains は指定された時刻が日付範囲内かどうかを返す
func (dr *DateRange) Contains(t time.Time) bool {
	if dr == nil {
		return true
	}
	if !dr.Start.IsZero() && t.Before(dr.Start) {
		return false
	}
	if !dr.End.IsZero() && t.After(dr.End) {
		return false
	}
	return true
}

// Oldest はSlack APIのoldestパラメータ用のタイムスタンプを返す
func (dr *DateRange) Oldest() string {
	if dr == nil || dr.Start.IsZero() {
		return ""
	}
	return FormatSlackTimestamp(dr.Start)
}

// Latest はSlack APIのlatestパラメータ用のタイムスタンプを返す
func (dr *DateRange) Latest() string {
	if dr == nil || dr.End.IsZero() {
		return ""
	}
	return FormatSlackTimestamp(dr.End)
}
