package service

import (
	"context"
	"fmt"

	"github.com/paulera/team-stats/internal/domain"
)

// mockMessageRepository はMessageRepositoryのモック実装
type mockMessageRepository struct {
	messages    []*domain.Message
	replies     map[string][]*domain.Message
	err         error
	repliesErr  error
	threadCalls []string
}

func (m *mockMessageRepository) FindByChannel(ctx context.Context, channelID string, dateRange *domain.DateRange) ([]*domain.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*domain.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		if dateRange.Contains(msg.Timestamp) {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (m *mockMessageRepository) FindThreadReplies(ctx context.Context, channelID string, threadTS string, dateRange *domain.DateRange) ([]*domain.Message, error) {
	m.threadCalls = append(m.threadCalls, threadTS)
	if m.repliesErr != nil {
		return nil, m.repliesErr
	}
	result := make([]*domain.Message, 0)
	for _, msg := range m.replies[threadTS] {
		if dateRange.Contains(msg.Timestamp) {
			result = append(result, msg)
		}
	}
	return result, nil
}

// mockUserRepository はUserRepositoryのモック実装
type mockUserRepository struct {
	users map[string]*domain.User
	calls map[string]int
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[userID]++
	user, ok := m.users[userID]
	if !ok {
		return nil, fmt.Errorf("user_not_found")
	}
	return user, nil
}

// mockBotRepository はBotRepositoryのモック実装
type mockBotRepository struct {
	bots  map[string]*domain.Bot
	calls map[string]int
}

func (m *mockBotRepository) FindByID(ctx context.Context, botID string) (*domain.Bot, error) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[botID]++
	bot, ok := m.bots[botID]
	if !ok {
		return nil, fmt.Errorf("bot_not_found")
	}
	return bot, nil
}
