package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/paulera/team-stats/internal/config"
	"github.com/paulera/team-stats/internal/domain"
	slackinfra "github.com/paulera/team-stats/internal/infrastructure/slack"
	"github.com/paulera/team-stats/internal/logger"
	"github.com/spf13/cobra"
)

// flagAliases はpflagが扱えない2文字の短縮フラグと正式名の対応
var flagAliases = map[string]string{
	"-df": "--date-from",
	"-dt": "--date-to",
}

// NormalizeArgs は "-df" "-dt" を正式名に置き換える
// "--" 以降の引数はそのまま残す
func NormalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			normalized = append(normalized, args[i:]...)
			break
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := flagAliases[name]; ok {
			if hasValue {
				arg = long + "=" + value
			} else {
				arg = long
			}
		}
		normalized = append(normalized, arg)
	}
	return normalized
}

// Execute はコマンドを実行し、プロセスの終了コードを返す
// 失敗した場合は標準エラー出力に1行だけ出力する
func Execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(NormalizeArgs(args))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// Repositories はコマンドが使うリポジトリ一式
type Repositories struct {
	Channels domain.ChannelRepository
	Messages domain.MessageRepository
	Users    domain.UserRepository
	Bots     domain.BotRepository
}

// RepositoryFactory は設定からリポジトリ一式を作成する
type RepositoryFactory func(ctx context.Context, cfg *config.Config) (*Repositories, error)

// SlackRepositories はSlack APIに接続し、トークンを検証してからリポジトリを作成する
func SlackRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	client := slackinfra.NewClient(cfg.Slack)
	if err := client.AuthTest(ctx); err != nil {
		return nil, err
	}

	return &Repositories{
		Channels: slackinfra.NewChannelRepository(client),
		Messages: slackinfra.NewMessageRepository(client),
		Users:    slackinfra.NewUserRepository(client),
		Bots:     slackinfra.NewBotRepository(client),
	}, nil
}

// commonOptions は両方のコマンドに共通するフラグ
type commonOptions struct {
	dateFrom   string
	dateTo     string
	top        int
	format     string
	configPath string
	logLevel   string

	dateRange *domain.DateRange
}

func (o *commonOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.dateFrom, "date-from", "", "Start date (YYYY-MM-DD), alias -df")
	flags.StringVar(&o.dateTo, "date-to", "", "End date (YYYY-MM-DD), inclusive through end of day, alias -dt")
	flags.IntVarP(&o.top, "top", "t", 0, "Show only top N results (highest to lowest)")
	flags.StringVar(&o.format, "format", formatText, "Output format: text or csv")
	flags.StringVar(&o.configPath, "config", "", "Optional YAML configuration file")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level for stderr: trace, debug, info, warn, error")
}

// validate は入力値を検証する（ネットワークアクセスの前に行う）
func (o *commonOptions) validate() error {
	dateRange, err := domain.ParseDateRange(o.dateFrom, o.dateTo)
	if err != nil {
		return err
	}
	o.dateRange = dateRange

	if err := o.rankOptions().Validate(); err != nil {
		return err
	}
	return validateFormat(o.format)
}

func (o *commonOptions) rankOptions() domain.RankOptions {
	return domain.RankOptions{Top: o.top}
}

// prepare は設定を読み込み、ロガーを初期化し、リポジトリを作成する
func (o *commonOptions) prepare(cmd *cobra.Command, factory RepositoryFactory) (*Repositories, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	logger.Setup(cmd.ErrOrStderr(), cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return factory(cmd.Context(), cfg)
}

// emit は結果を並び替えて出力する
// すべて成功した場合にのみ標準出力へ書き込む
func (o *commonOptions) emit(cmd *cobra.Command, table *domain.FrequencyTable) error {
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeCounts(&buf, domain.Rank(table, o.rankOptions()), o.format); err != nil {
		return err
	}
	_, err := io.Copy(cmd.OutOrStdout(), &buf)
	return err
}
