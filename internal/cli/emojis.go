package cli

import (
	"github.com/paulera/team-stats/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewListEmojisCommand はチャンネル内の絵文字リアクションを集計するコマンドを作成する
func NewListEmojisCommand(factory RepositoryFactory) *cobra.Command {
	opts := &commonOptions{}
	var includeThreads bool

	cmd := &cobra.Command{
		Use:   "slack-list-emojis <channel_name>",
		Short: "Count emoji reactions used in a Slack channel",
		Example: `  slack-list-emojis general
  slack-list-emojis "#general" -df 2025-01-01 -dt 2025-01-31 -t 10`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := opts.prepare(cmd, factory)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			channel, err := repos.Channels.FindByName(ctx, args[0])
			if err != nil {
				return err
			}

			log.Info().
				Str("channel", channel.Name).
				Str("channelID", channel.ID).
				Bool("includeThreads", includeThreads).
				Msgf("Fetching emoji reactions from #%s...", channel.Name)

			table, err := service.NewEmojiCounter(repos.Messages).Count(ctx, channel.ID, opts.dateRange, service.EmojiCountOptions{
				IncludeThreads: includeThreads,
			})
			if err != nil {
				return err
			}

			return opts.emit(cmd, table)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&includeThreads, "include-threads", false, "Also count reactions on thread replies")

	return cmd
}
