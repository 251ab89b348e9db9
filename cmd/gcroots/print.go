package gcroots

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/gcroots/pkg/filesystem"
	"github.com/arthur-debert/gcroots/pkg/gcroot"
	"github.com/arthur-debert/gcroots/pkg/render"
)

func newPrintCmd(a *app) *cobra.Command {
	var (
		plain         bool
		from          string
		showDeletable bool
		format        = render.FormatText
	)

	cmd := &cobra.Command{
		Use:     "print",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := filesystem.NewReadOnly()

			roots, err := gcroot.Inventory(cmd.Context(), a.source(from), fsys)
			if err != nil {
				return fmt.Errorf(MsgErrInventory, err)
			}

			var policy *gcroot.Policy
			if showDeletable || a.cfg.Display.ShowDeletable {
				policy = a.policy(fsys)
			}

			r, err := a.renderer(format, cmd.OutOrStdout(), plain, policy)
			if err != nil {
				return err
			}
			if err := r.RenderInventory(roots); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	cmd.Flags().VarP(&format, "format", "f", MsgFlagFormat)
	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	cmd.Flags().BoolVar(&showDeletable, "show-deletable", false, MsgFlagShowDeletable)

	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
