package domain

import "errors"

var (
	// ErrChannelNotFound はチャンネルが見つからない、またはアクセス権がない場合のエラー
	ErrChannelNotFound = errors.New("channel not found or not accessible")
	// ErrInvalidDate は日付の形式が不正な場合のエラー
	ErrInvalidDate = errors.New("invalid date format")
	// ErrInvalidDateRange は開始日が終了日より後の場合のエラー
	ErrInvalidDateRange = errors.New("invalid date range")
)
