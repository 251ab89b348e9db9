package gcroots

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/filesystem"
	"github.com/arthur-debert/gcroots/pkg/gcroot"
	"github.com/arthur-debert/gcroots/pkg/logging"
	"github.com/arthur-debert/gcroots/pkg/render"
)

func newDeleteCmd(a *app) *cobra.Command {
	var (
		from   string
		plain  bool
		dryRun bool
		format = render.FormatText
		sel    = gcroot.NewSelection()
	)

	cmd := &cobra.Command{
		Use:     "delete [locations...]",
		Short:   MsgDeleteShort,
		Long:    MsgDeleteLong,
		Example: MsgDeleteExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.delete")

			if cmd.Flags().Changed("keep") && sel.Keep < 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrNegativeKeep)
			}
			sel.Locations = args
			if sel.Empty() {
				return errors.New(errors.ErrInvalidInput, MsgErrNothingSelected)
			}

			fsys := filesystem.NewOS()
			roots, err := gcroot.Inventory(cmd.Context(), a.source(from), fsys)
			if err != nil {
				return fmt.Errorf(MsgErrInventory, err)
			}

			picked, notFound, err := gcroot.Select(roots, sel)
			if err != nil {
				return fmt.Errorf(MsgErrSelect, err)
			}
			logger.Info().
				Int("selected", len(picked)).
				Int("not_found", len(notFound)).
				Bool("dry_run", dryRun).
				Msg("Deleting roots")

			report := gcroot.DeleteAll(a.policy(fsys), picked, gcroot.DeleteOptions{DryRun: dryRun})
			report.Results = append(notFound, report.Results...)

			r, err := a.renderer(format, cmd.OutOrStdout(), plain, nil)
			if err != nil {
				return err
			}
			if err := r.RenderDeleteReport(report); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			if report.HasFailures() {
				return errors.Newf(errors.ErrDelete, MsgErrDeleteFailed, report.Count(gcroot.StatusFailed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sel.Inactive, "inactive", false, MsgFlagInactive)
	cmd.Flags().IntVar(&sel.Keep, "keep", -1, MsgFlagKeep)
	cmd.Flags().BoolVar(&sel.Standalone, "standalone", false, MsgFlagStandalone)
	cmd.Flags().StringVar(&sel.Profile, "profile", "", MsgFlagProfile)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	cmd.Flags().VarP(&format, "format", "f", MsgFlagFormat)
	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)

	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}
