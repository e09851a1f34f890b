package cli

import (
	"github.com/paulera/team-stats/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewMsgCountCommand はチャンネル内のメッセージと返信を数えるコマンドを作成する
// -r と -m を両方指定した場合、またはどちらも指定しない場合は両方を数える
func NewMsgCountCommand(factory RepositoryFactory) *cobra.Command {
	opts := &commonOptions{}
	var countOpts service.MessageCountOptions

	cmd := &cobra.Command{
		Use:   "slack-msg-count <channel_name>",
		Short: "Count messages and thread replies in a Slack channel",
		Example: `  slack-msg-count general
  slack-msg-count "#general" -r -u -df 2025-01-01 -t 5`,
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
				Bool("replies", countOpts.Replies).
				Bool("messages", countOpts.Messages).
				Bool("perUser", countOpts.PerUser).
				Msgf("Fetching messages from #%s...", channel.Name)

			resolver := service.NewActorResolver(repos.Users, repos.Bots)
			table, err := service.NewMessageCounter(repos.Messages, resolver).Count(ctx, channel, opts.dateRange, countOpts)
			if err != nil {
				return err
			}

			return opts.emit(cmd, table)
		},
	}

	opts.register(cmd)
	flags := cmd.Flags()
	flags.BoolVarP(&countOpts.Replies, "replies", "r", false, "Count thread replies")
	flags.BoolVarP(&countOpts.Messages, "messages", "m", false, "Count top-level messages")
	flags.BoolVarP(&countOpts.PerUser, "user", "u", false, "Break counts down per user")

	return cmd
}
