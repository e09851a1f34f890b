package service

import (
	"context"

	"github.com/paulera/team-stats/internal/domain"
	"github.com/rs/zerolog/log"
)

// EmojiCountOptions は絵文字集計の対象を指定する
type EmojiCountOptions struct {
	// IncludeThreads が true の場合、スレッドの返信についたリアクションも集計する
	IncludeThreads bool
}

// EmojiCounter はチャンネルで使われたリアクション絵文字を集計するサービス
type EmojiCounter struct {
	messageRepo domain.MessageRepository
}

// NewEmojiCounter は新しいEmojiCounterサービスを作成する
func NewEmojiCounter(messageRepo domain.MessageRepository) *EmojiCounter {
	return &EmojiCounter{
		messageRepo: messageRepo,
	}
}

// Count はリアクションの使用回数を ":name:" ごとに集計する
// リアクションはAPIが返す使用回数をそのまま加算する
func (c *EmojiCounter) Count(ctx context.Context, channelID string, dateRange *domain.DateRange, opts EmojiCountOptions) (*domain.FrequencyTable, error) {
	messages, err := c.messageRepo.FindByChannel(ctx, channelID, dateRange)
	if err != nil {
		return nil, err
	}

	if opts.IncludeThreads {
		messages, err = withThreadReplies(ctx, c.messageRepo, channelID, messages, dateRange)
		if err != nil {
			return nil, err
		}
	}

	table := domain.NewFrequencyTable()
	total := 0
	for _, msg := range messages {
		if !msg.HasReactions() {
			continue
		}
		for _, reaction := range msg.Reactions {
			table.Add(reaction.Label(), reaction.Count)
		}
		total += msg.TotalReactionCount()
	}

	log.Info().
		Str("channelID", channelID).
		Int("messages", len(messages)).
		Int("reactions", total).
		Int("emojis", table.Len()).
		Msg("Reactions counted")

	return table, nil
}
