package slack

import (
	"context"
	"fmt"

	"github.com/paulera/team-stats/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// channelTypes は検索対象のチャンネル種別（公開・非公開）
var channelTypes = []string{"public_channel", "private_channel"}

// ChannelRepository はSlack APIを使用してチャンネル情報を取得するリポジトリ
type ChannelRepository struct {
	client *Client
}

// NewChannelRepository は新しいChannelRepositoryを作成する
func NewChannelRepository(client *Client) *ChannelRepository {
	return &ChannelRepository{
		client: client,
	}
}

// FindByName は参加しているチャンネルの中からチャンネル名で検索する
// 先頭の "#" は無視する
func (r *ChannelRepository) FindByName(ctx context.Context, name string) (*domain.Channel, error) {
	name = domain.NormalizeChannelName(name)
	cursor := ""
	page := 0

	for {
		page++
		if err := r.client.wait(ctx); err != nil {
			return nil, err
		}

		log.Debug().Int("page", page).Msg("Fetching user conversations")
		conversations, nextCursor, err := r.client.api.GetConversationsForUserContext(ctx, &slack.GetConversationsForUserParameters{
			Types:  channelTypes,
			Limit:  r.client.pageSize,
			Cursor: cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list channels: %w", err)
		}

		// 指定されたチャンネル名に一致するチャンネルを検索
		for _, conversation := range conversations {
			if conversation.Name == name {
				log.Debug().
					Str("channel", name).
					Str("channelID", conversation.ID).
					Msg("Channel found")
				return &domain.Channel{
					ID:   conversation.ID,
					Name: conversation.Name,
				}, nil
			}
		}

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	return nil, fmt.Errorf("%w: '%s'", domain.ErrChannelNotFound, name)
}
