package gcroots

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gcroots/internal/version"
	"github.com/arthur-debert/gcroots/pkg/config"
	"github.com/arthur-debert/gcroots/pkg/filesystem"
	"github.com/arthur-debert/gcroots/pkg/gcroot"
	"github.com/arthur-debert/gcroots/pkg/listing"
	"github.com/arthur-debert/gcroots/pkg/logging"
	"github.com/arthur-debert/gcroots/pkg/render"
	"github.com/arthur-debert/gcroots/pkg/style"
	"github.com/arthur-debert/gcroots/pkg/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// app holds the state shared by all subcommands once the root command's
// PersistentPreRunE has run.
type app struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// source returns where the root listing comes from: a saved listing when
// from is set, the configured command otherwise.
func (a *app) source(from string) listing.Source {
	if from != "" {
		return listing.NewFile(from)
	}
	return listing.NewCommand(a.cfg.Listing.Command, a.cfg.Listing.Args...)
}

func (a *app) policy(fsys filesystem.FS) *gcroot.Policy {
	return gcroot.NewPolicy(fsys, a.cfg.Policy.ProtectedPrefixes...)
}

// renderer picks the renderer for format. Text output is styled unless plain
// is set or the color mode rules it out for w.
func (a *app) renderer(format render.Format, w io.Writer, plain bool, policy *gcroot.Policy) (render.Renderer, error) {
	mode := a.cfg.Display.Color
	if plain {
		mode = style.ModeNever
	}
	style.Setup(mode, w)

	return render.New(format, w, render.Options{
		Styled: !plain && style.UseColor(mode, w),
		Policy: policy,
	})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "gcroots",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPrintCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	manager := newTopicManager()
	rootCmd.AddCommand(newTopicsCmd(manager))
	manager.Install(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newTopicManager() *topics.Manager {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	renderer := topics.NewGlamourRenderer()
	if !stdoutIsTerminal() {
		renderer.Style = "notty"
	}
	manager, err := topics.New(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
	if err != nil {
		panic(err)
	}
	return manager
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gcroots version %s\n", version.Version)
			fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			fmt.Fprintf(out, "Built:  %s\n", version.Date)
		},
	}
}
