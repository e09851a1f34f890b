package slack

import (
	"context"
	"fmt"

	"github.com/paulera/team-stats/internal/domain"
	"github.com/slack-go/slack"
)

// UserRepository はSlack APIを使用してユーザー情報を取得するリポジトリ
type UserRepository struct {
	client *Client
}

// NewUserRepository は新しいUserRepositoryを作成する
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{
		client: client,
	}
}

// FindByID はユーザーIDからユーザー情報（メールアドレスを含む）を取得する
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := r.client.wait(ctx); err != nil {
		return nil, err
	}

	userInfo, err := r.client.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	return &domain.User{
		ID:    userInfo.ID,
		Name:  userInfo.Name,
		Email: userInfo.Profile.Email,
	}, nil
}

// BotRepository はSlack APIを使用してボット情報を取得するリポジトリ
type BotRepository struct {
	client *Client
}

// NewBotRepository は新しいBotRepositoryを作成する
func NewBotRepository(client *Client) *BotRepository {
	return &BotRepository{
		client: client,
	}
}

// FindByID はボットIDからボット情報を取得する
func (r *BotRepository) FindByID(ctx context.Context, botID string) (*domain.Bot, error) {
	if err := r.client.wait(ctx); err != nil {
		return nil, err
	}

	bot, err := r.client.api.GetBotInfoContext(ctx, slack.GetBotInfoParameters{Bot: botID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot %s: %w", botID, err)
	}

	return &domain.Bot{
		ID:    bot.ID,
		Name:  bot.Name,
		AppID: bot.AppID,
	}, nil
}
