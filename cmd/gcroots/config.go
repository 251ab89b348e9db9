package gcroots

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/gcroots/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			path := a.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Write(path, a.cfg, force); err != nil {
				return fmt.Errorf(MsgErrWriteConfig, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
