package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"kctx-cli/internal/config"
	"kctx-cli/internal/kctx"
	"kctx-cli/internal/kubectl"
	"kctx-cli/internal/render"
	"kctx-cli/internal/state"
)

var (
	manager *kctx.Manager

	currentFlag bool
	renameFlag  bool
	deleteFlag  string
)

// rootCmd represents the base command; kctx has no subcommands, the whole
// surface is flags plus one optional positional argument.
var rootCmd = &cobra.Command{
	Use:   "kctx [context|-]",
	Short: "Fast kubectl context switching with history and env labels",
	Long: `kctx is a small helper around 'kubectl config' for switching contexts.

Without arguments it lists all contexts, marking the current (●) and the
previously used (◌) one. Pass a context name to switch, or '-' to toggle
back to the previous context.

Context environment labels (dev/stage/prod) live in
~/.config/kctx/config.toml:

    [contexts."ares-dev-shared"]
    env = "dev"

    [contexts."ares-prod-shared"]
    env = "prod"

Switching to a context labeled prod prints a warning on stderr. The
previously used context is remembered in ~/.config/kctx/state.json.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          validateArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Global.Kubectl = viper.GetString("kubectl")
		config.Global.OutputFormat = viper.GetString("output")
		config.Global.ColorsEnabled = viper.GetBool("colors")
		config.Global.Debug = viper.GetBool("debug")

		switch config.Global.OutputFormat {
		case config.OutputFormatTable, config.OutputFormatJSON, config.OutputFormatYAML:
		default:
			return fmt.Errorf("unsupported output format: %s", config.Global.OutputFormat)
		}

		logger := zap.NewNop().Sugar()
		if config.Global.Debug {
			devLogger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to initialize debug logging: %w", err)
			}
			logger = devLogger.Sugar()
		}

		paths := config.DefaultPaths()
		store := state.NewStore(paths, logger)
		client := kubectl.NewClient(config.Global.Kubectl, logger)

		manager = kctx.New(client, store, func() config.LabelTable {
			return config.LoadLabels(paths)
		})
		manager.Logger = logger
		manager.OutColor = config.Global.ColorsEnabled && render.Interactive(os.Stdout)
		manager.ErrColor = config.Global.ColorsEnabled && render.Interactive(os.Stderr)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		switch {
		case currentFlag:
			return manager.Current(ctx)
		case renameFlag:
			return manager.Rename(ctx, args[0], args[1])
		case cmd.Flags().Changed("delete"):
			return manager.Delete(ctx, deleteFlag)
		case len(args) == 1:
			return manager.Switch(ctx, args[0])
		default:
			return manager.List(ctx, config.Global.OutputFormat)
		}
	},
}

// validateArgs checks the positional arguments against whichever mode the
// flags selected.
func validateArgs(cmd *cobra.Command, args []string) error {
	if renameFlag {
		if len(args) != 2 {
			return fmt.Errorf("--rename requires exactly two arguments: OLD NEW")
		}
		return nil
	}

	if currentFlag || cmd.Flags().Changed("delete") {
		if len(args) != 0 {
			return fmt.Errorf("unexpected argument %q", args[0])
		}
		return nil
	}

	return cobra.MaximumNArgs(1)(cmd, args)
}

// Execute runs the root command. This is called by main.main().
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVar(&currentFlag, "current", false, "Print the current context and exit")
	rootCmd.Flags().BoolVar(&renameFlag, "rename", false, "Rename a context: --rename OLD NEW")
	rootCmd.Flags().StringVar(&deleteFlag, "delete", "", "Delete a context")
	rootCmd.MarkFlagsMutuallyExclusive("current", "rename", "delete")

	// Global flags
	rootCmd.PersistentFlags().StringVar(&config.Global.OutputFormat, "output", config.OutputFormatTable, "Output format for listings (table|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&config.Global.ColorsEnabled, "colors", true, "Enable colored output")
	rootCmd.PersistentFlags().BoolVar(&config.Global.Debug, "debug", false, "Enable debug output")

	// Bind flags to viper
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("colors", rootCmd.PersistentFlags().Lookup("colors"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	paths := config.DefaultPaths()

	viper.SetConfigType("toml")
	viper.SetConfigName("config")
	viper.AddConfigPath(paths.BaseDir)

	// Read in environment variables that match
	viper.SetEnvPrefix("KCTX")
	viper.AutomaticEnv()

	viper.SetDefault("kubectl", config.DefaultKubectlCommand)

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && config.Global.Debug {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
