package dotapt

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotapt/internal/version"
	"github.com/arthur-debert/dotapt/pkg/aptget"
	"github.com/arthur-debert/dotapt/pkg/cobrax/topics"
	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/logging"
	"github.com/arthur-debert/dotapt/pkg/taskfile"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotapt",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newDirectivesCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// initTopics installs "help <topic>" backed by the embedded topic files
func initTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if styledHelp() {
		renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.Initialize(rootCmd, source, topics.Options{Renderer: renderer}); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "run <taskfile>",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"yaml", "yml", "json", "toml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			file, err := taskfile.Load(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), file.Path, file.Tasks)
		},
	}
}

func newInstallCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "install <package[=ppa]>...",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := packageArgs(args)
			if err != nil {
				return err
			}

			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			tasks := []taskfile.Task{{Entries: []taskfile.Entry{{
				Directive: aptget.DirectiveName,
				Data:      specs,
			}}}}
			return a.run(cmd.Context(), MsgSourceArgs, tasks)
		},
	}
}

func newDirectivesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "directives",
		Short:   MsgDirectivesShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			d, _, err := a.newDispatcher()
			if err != nil {
				return err
			}
			for _, name := range d.Directives() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
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
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// packageArgs turns "name" and "name=ppa" arguments into apt-get entries
func packageArgs(args []string) ([]interface{}, error) {
	specs := make([]interface{}, 0, len(args))
	for _, arg := range args {
		name, ppa, found := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		ppa = strings.TrimPrefix(strings.TrimSpace(ppa), "ppa:")

		switch {
		case name == "":
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrInstallArgs, arg).WithDetail("argument", arg)
		case !found:
			specs = append(specs, name)
		case ppa == "":
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrInstallArgs, arg).WithDetail("argument", arg)
		default:
			specs = append(specs, []interface{}{name, ppa})
		}
	}
	return specs, nil
}
