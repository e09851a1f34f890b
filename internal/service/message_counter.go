package service

import (
	"context"

	"github.com/paulera/team-stats/internal/domain"
	"github.com/rs/zerolog/log"
)

// MessageCountOptions はメッセージ集計の対象と集計単位を指定する
// Replies と Messages の両方、またはどちらも指定しない場合は両方を集計する
type MessageCountOptions struct {
	Replies  bool
	Messages bool
	PerUser  bool
}

func (o MessageCountOptions) countReplies() bool {
	return o.Replies || !o.Messages
}

func (o MessageCountOptions) countMessages() bool {
	return o.Messages || !o.Replies
}

func (o MessageCountOptions) includes(msg *domain.Message) bool {
	if msg.IsThreadReply() {
		return o.countReplies()
	}
	return o.countMessages()
}

// MessageCounter はチャンネルのメッセージ数・返信数を集計するサービス
type MessageCounter struct {
	messageRepo domain.MessageRepository
	resolver    *ActorResolver
}

// NewMessageCounter は新しいMessageCounterサービスを作成する
func NewMessageCounter(messageRepo domain.MessageRepository, resolver *ActorResolver) *MessageCounter {
	return &MessageCounter{
		messageRepo: messageRepo,
		resolver:    resolver,
	}
}

// Count はメッセージ数を集計する
// キーはチャンネル名、PerUser の場合は "チャンネル名:識別子:ID"
func (c *MessageCounter) Count(ctx context.Context, channel *domain.Channel, dateRange *domain.DateRange, opts MessageCountOptions) (*domain.FrequencyTable, error) {
	messages, err := c.messageRepo.FindByChannel(ctx, channel.ID, dateRange)
	if err != nil {
		return nil, err
	}

	if opts.countReplies() {
		messages, err = withThreadReplies(ctx, c.messageRepo, channel.ID, messages, dateRange)
		if err != nil {
			return nil, err
		}
	}

	total := 0
	perActor := make(map[domain.Actor]int)
	order := make([]domain.Actor, 0)
	for _, msg := range messages {
		if !opts.includes(msg) {
			continue
		}
		total++

		actor := msg.Actor()
		if _, ok := perActor[actor]; !ok {
			order = append(order, actor)
		}
		perActor[actor]++
	}

	log.Info().
		Str("channel", channel.Name).
		Int("fetched", len(messages)).
		Int("counted", total).
		Int("actors", len(perActor)).
		Msg("Messages counted")

	table := domain.NewFrequencyTable()
	if !opts.PerUser {
		table.Add(channel.Name, total)
		return table, nil
	}

	// 投稿者の解決は集計後に1IDにつき1回だけ行う
	for _, actor := range order {
		table.Add(channel.Name+":"+c.resolver.Label(ctx, actor), perActor[actor])
	}
	return table, nil
}
