package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseSlackTimestamp はSlackのタイムスタンプ文字列（"1234567890.123456"）をtime.Timeに変換する
func ParseSlackTimestamp(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slack timestamp %q: %w", ts, err)
	}

	var usec int64
	if fracPart != "" {
		if len(fracPart) > 6 {
			fracPart = fracPart[:6]
		}
		fracPart += strings.Repeat("0", 6-len(fracPart))
		usec, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid slack timestamp %q: %w", ts, err)
		}
	}

	return time.Unix(sec, usec*int64(time.Microsecond)), nil
}

// FormatSlackTimestamp はtime.TimeをSlackのタイムスタンプ形式に変換する
func FormatSlackTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}
