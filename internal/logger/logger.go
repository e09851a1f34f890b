package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup はグローバルロガーを w に出力するよう設定する
// 標準出力は集計結果専用のため、w には通常は標準エラー出力を渡す
// 不正なレベルは info として扱い、警告を1回出力する
func Setup(w io.Writer, level string) {
	consoleWriter := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Str("level", level).Msg("Invalid log level, defaulting to 'info'")
	}
}

// SlackAdapter はslack-goのログ出力をzerologに流す
type SlackAdapter struct {
	logger zerolog.Logger
}

// NewSlackAdapter は component=slack-api を付けたアダプタを作成する
func NewSlackAdapter() *SlackAdapter {
	return &SlackAdapter{
		logger: log.With().Str("component", "slack-api").Logger(),
	}
}

func (a *SlackAdapter) Output(calldepth int, s string) error {
	a.logger.Debug().Msg(s)
	return nil
}
