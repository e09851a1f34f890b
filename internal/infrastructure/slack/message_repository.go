package slack

import (
	"context"
	"fmt"

	"github.com/paulera/team-stats/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// MessageRepository はSlack APIを使用してメッセージを取得するリポジトリ
type MessageRepository struct {
	client *Client
}

// NewMessageRepository は新しいMessageRepositoryを作成する
func NewMessageRepository(client *Client) *MessageRepository {
	return &MessageRepository{
		client: client,
	}
}

// FindByChannel はチャンネルのメッセージを全ページ取得する
// 途中のページで失敗した場合は取得済みの結果も返さない
func (r *MessageRepository) FindByChannel(ctx context.Context, channelID string, dateRange *domain.DateRange) ([]*domain.Message, error) {
	params := slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    dateRange.Oldest(),
		Latest:    dateRange.Latest(),
		Inclusive: true,
		Limit:     r.client.pageSize,
	}

	var messages []*domain.Message
	page := 0

	for {
		page++
		if err := r.client.wait(ctx); err != nil {
			return nil, err
		}

		history, err := r.client.api.GetConversationHistoryContext(ctx, &params)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch history page %d: %w", page, err)
		}

		for i := range history.Messages {
			domainMsg, err := convertToDomainMessage(&history.Messages[i], channelID)
			if err != nil {
				return nil, err
			}
			messages = append(messages, domainMsg)
		}

		log.Debug().
			Str("channelID", channelID).
			Int("page", page).
			Int("messages", len(history.Messages)).
			Msg("Fetched history page")

		if !history.HasMore || history.ResponseMetaData.NextCursor == "" {
			break
		}
		params.Cursor = history.ResponseMetaData.NextCursor
	}

	return messages, nil
}

// FindThreadReplies はスレッドの返信を全ページ取得する
// APIが各ページに含める親メッセージと、日付範囲外の返信は除外する
func (r *MessageRepository) FindThreadReplies(ctx context.Context, channelID string, threadTS string, dateRange *domain.DateRange) ([]*domain.Message, error) {
	params := slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Oldest:    dateRange.Oldest(),
		Latest:    dateRange.Latest(),
		Inclusive: true,
		Limit:     r.client.pageSize,
	}

	var messages []*domain.Message

	for {
		if err := r.client.wait(ctx); err != nil {
			return nil, err
		}

		replies, hasMore, nextCursor, err := r.client.api.GetConversationRepliesContext(ctx, &params)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch replies of thread %s: %w", threadTS, err)
		}

		for i := range replies {
			if replies[i].Timestamp == threadTS {
				continue
			}
			domainMsg, err := convertToDomainMessage(&replies[i], channelID)
			if err != nil {
				return nil, err
			}
			if !dateRange.Contains(domainMsg.Timestamp) {
				continue
			}
			messages = append(messages, domainMsg)
		}

		if !hasMore || nextCursor == "" {
			break
		}
		params.Cursor = nextCursor
	}

	return messages, nil
}

// convertToDomainMessage はSlackのMessageをドメインモデルに変換する
func convertToDomainMessage(msg *slack.Message, channelID string) (*domain.Message, error) {
	timestamp, err := domain.ParseSlackTimestamp(msg.Timestamp)
	if err != nil {
		return nil, err
	}

	reactions := make([]domain.Reaction, 0, len(msg.Reactions))
	for _, reaction := range msg.Reactions {
		reactions = append(reactions, domain.Reaction{
			Name:  reaction.Name,
			Count: reaction.Count,
		})
	}

	var appID string
	if msg.BotProfile != nil {
		appID = msg.BotProfile.AppID
	}

	return &domain.Message{
		ID:         msg.Timestamp,
		Text:       msg.Text,
		UserID:     msg.User,
		BotID:      msg.BotID,
		AppID:      appID,
		ChannelID:  channelID,
		Timestamp:  timestamp,
		SubType:    msg.SubType,
		ReplyCount: msg.ReplyCount,
		Reactions:  reactions,
		ThreadTS:   msg.ThreadTimestamp,
	}, nil
}
