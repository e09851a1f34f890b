package service

import (
	"context"

	"github.com/paulera/team-stats/internal/domain"
	"github.com/rs/zerolog/log"
)

// withThreadReplies はスレッドを持つメッセージの返信を取得して追加する
// 返信はチャンネル履歴にも現れることがあるため、タイムスタンプで重複を除く
func withThreadReplies(ctx context.Context, repo domain.MessageRepository, channelID string, messages []*domain.Message, dateRange *domain.DateRange) ([]*domain.Message, error) {
	seen := make(map[string]bool, len(messages))
	result := make([]*domain.Message, 0, len(messages))
	for _, msg := range messages {
		if seen[msg.ID] {
			continue
		}
		seen[msg.ID] = true
		result = append(result, msg)
	}

	threads, added := 0, 0
	for _, msg := range result {
		if !msg.HasThread() {
			continue
		}
		threads++

		replies, err := repo.FindThreadReplies(ctx, channelID, msg.ID, dateRange)
		if err != nil {
			return nil, err
		}
		for _, reply := range replies {
			if seen[reply.ID] {
				continue
			}
			seen[reply.ID] = true
			result = append(result, reply)
			added++
		}
	}

	log.Debug().
		Str("channelID", channelID).
		Int("threads", threads).
		Int("replies", added).
		Msg("Thread replies fetched")

	return result, nil
}
