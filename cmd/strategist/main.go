package main

import (
	"fmt"
	"os"
	"strings"

	"option-strategist/internal/cli"
	"option-strategist/internal/config"
	"option-strategist/internal/logging"
)

func main() {
	// The config flag has to be read before cobra parses anything,
	// since the loaded config wires the command tree itself.
	configDir := configDirFromArgs(os.Args[1:])
	if configDir == "" {
		configDir = os.Getenv("STRATEGIST_CONFIG_DIR")
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLoggerWithConfig(cfg.Logging.ToLogConfig())

	app := cli.NewApp(cfg, logger)
	rootCmd := cli.NewRootCmd(app)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configDirFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
