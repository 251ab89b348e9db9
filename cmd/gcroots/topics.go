package gcroots

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/topics"
)

func newTopicsCmd(manager *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return manager.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			if !manager.Show(cmd.OutOrStdout(), cmd.Root().Name(), name) {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownTopic, name)
			}
			return nil
		},
	}
}
