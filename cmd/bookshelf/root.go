package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kerbaras/bookshelf/pkg/app"
	"github.com/kerbaras/bookshelf/pkg/config"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/logger"
	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	configErr error

	cfg       *config.Config
	appLog    *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:          "bookshelf",
	Short:        "A cozy personal book catalog",
	Long:         "Keep track of the books you own and read, with a TUI and a CLI, and look up summaries on Google Books",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}

		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded

		// The TUI owns the terminal, so it only logs to a file.
		if cmd == rootCmd && cfg.LogFile == "" {
			appLog, logCloser = logger.Discard(), io.NopCloser(nil)
			return nil
		}

		appLog, logCloser, err = logger.Open(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			appLog.Debug("using config file", "path", used)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, release, err := openLibrary(true)
		if err != nil {
			return err
		}
		defer release()

		return app.NewApp(controller).Run()
	},
}

// openLibrary builds a controller from the resolved config and loads the
// collection. Sessions that write take the library lock first; release
// drops it.
func openLibrary(exclusive bool) (*services.LibraryController, func(), error) {
	release := func() {}

	if exclusive {
		lock, err := data.LockLibrary(cfg.LibraryPath)
		if err != nil {
			if errors.Is(err, data.ErrLibraryLocked) {
				return nil, nil, fmt.Errorf("%w: %s", err, cfg.LibraryPath)
			}
			return nil, nil, err
		}
		release = func() {
			if err := lock.Unlock(); err != nil {
				appLog.Warn("failed to release library lock", "path", lock.Path(), "error", err)
			}
		}
	}

	controller := services.NewLibraryControllerFromConfig(cfg, appLog)
	if err := controller.Open(); err != nil {
		release()
		var malformed *data.MalformedStoreError
		if errors.As(err, &malformed) {
			return nil, nil, fmt.Errorf("refusing to start: %w", err)
		}
		return nil, nil, fmt.Errorf("failed to open library: %w", err)
	}

	return controller, release, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bookshelf.yaml)")
	rootCmd.PersistentFlags().String("library", config.DefaultLibraryPath, "path to the library JSON file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "pretty", "log format: pretty or json")

	_ = viper.BindPFlag("library", rootCmd.PersistentFlags().Lookup("library"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			configErr = err
			return
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bookshelf")
	}

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("failed to read config: %w", err)
		}
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
