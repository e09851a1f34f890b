package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/paulera/team-stats/internal/config"
	"github.com/paulera/team-stats/internal/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Client はSlack APIクライアントにリクエスト間隔の制御を加えたもの
// リトライは行わず、間隔の調整のみを行う
type Client struct {
	api      *slack.Client
	limiter  *rate.Limiter
	pageSize int
}

// NewClient は設定から新しいClientを作成する
func NewClient(cfg config.SlackConfig) *Client {
	options := []slack.Option{
		slack.OptionLog(logger.NewSlackAdapter()),
		slack.OptionDebug(zerolog.GlobalLevel() <= zerolog.TraceLevel),
	}
	if cfg.APIURL != "" {
		options = append(options, slack.OptionAPIURL(cfg.APIURL))
	}

	return &Client{
		api:      slack.New(cfg.Token, options...),
		limiter:  newLimiter(cfg.RateInterval),
		pageSize: cfg.PageSize,
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// wait は次のリクエストを送ってよいタイミングまで待機する
func (c *Client) wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// AuthTest はトークンが有効かどうかを確認する
func (c *Client) AuthTest(ctx context.Context) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	log.Debug().Msg("Testing authentication with Slack")
	authTest, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("auth test failed: %w", err)
	}

	log.Info().
		Str("user", authTest.User).
		Str("userID", authTest.UserID).
		Str("team", authTest.Team).
		Msg("Connected to Slack")
	return nil
}
