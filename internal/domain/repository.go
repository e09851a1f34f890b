package domain

import "context"

// ChannelRepository はチャンネル情報を取得するリポジトリインターフェース
type ChannelRepository interface {
	FindByName(ctx context.Context, name string) (*Channel, error)
}

// MessageRepository はメッセージを取得するリポジトリインターフェース
type MessageRepository interface {
	FindByChannel(ctx context.Context, channelID string, dateRange *DateRange) ([]*Message, error)
	FindThreadReplies(ctx context.Context, channelID string, threadTS string, dateRange *DateRange) ([]*Message, error)
}

// UserRepository はユーザー情報を取得するリポジトリインターフェース
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*User, error)
}

// BotRepository はボット情報を取得するリポジトリインターフェース
type BotRepository interface {
	FindByID(ctx context.Context, botID string) (*Bot, error)
}
