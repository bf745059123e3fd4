package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"option-strategist/internal/config"
	"option-strategist/internal/engine"
	"option-strategist/internal/logging"
)

// Version is set at build time.
var Version = "dev"

// App holds the shared dependencies for all commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Engine *engine.Engine
}

// NewApp creates the application container from loaded configuration.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		Config: cfg,
		Logger: logger,
		Engine: engine.NewWithLogger(logger),
	}
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strategist",
		Short: "Option strategy payoff and risk analysis",
		Long: `strategist builds option strategies from a small set of inputs,
samples their payoff at expiry across a price range, and reports the
risk profile: maximum gain, maximum loss and the breakeven price.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logging.SetDebugLevel()
			}
		},
	}

	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "configuration directory")

	rootCmd.AddCommand(
		newComputeCmd(app),
		newStrategiesCmd(app),
		newSuggestCmd(app),
		newConfigCmd(app),
		newVersionCmd(app),
	)

	return rootCmd
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
				return
			}
			output.Printf("strategist %s\n", Version)
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration directory",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			output.Println(config.DefaultConfigDir())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			return output.JSON(app.Config)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration invalid: %v", err)
				return err
			}
			output.Success("Configuration valid")
			return nil
		},
	})

	return configCmd
}
