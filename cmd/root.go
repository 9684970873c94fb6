package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imishinist/rlboard/internal/config"
	"github.com/imishinist/rlboard/internal/explorer"
	"github.com/imishinist/rlboard/internal/logging"
)

// app holds what the subcommands share once the root command has loaded
// its configuration.
type app struct {
	v      *viper.Viper
	fs     afero.Fs
	cfg    *config.Config
	logger zerolog.Logger
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{v: viper.New(), fs: fs, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "rlboard",
		Short: "Reinforcement learning experiment log explorer",
		Long: `A command line tool for browsing reinforcement learning experiment logs.
Lists experiment folders and metrics datasets, filters datasets by
hyperparameter ranges and loads metrics into a combined table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("base-dir", "", "Directory holding experiment folders (overrides RLBOARD_BASE_DIR)")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace/debug/info/warn/error/disabled)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table/json/yaml)")
	a.v.BindPFlag("base_dir", rootCmd.PersistentFlags().Lookup("base-dir"))
	a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	a.v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(
		newFoldersCmd(a),
		newDatasetsCmd(a),
		newHyperparamsCmd(a),
		newLoadCmd(a),
		newColumnsCmd(a),
	)

	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// Environment variables
	a.v.SetEnvPrefix("RLBOARD")
	a.v.AutomaticEnv()

	// Set defaults
	config.SetDefaults(a.v)

	a.cfg = config.FromViper(a.v)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

func (a *app) explorer() *explorer.Explorer {
	return explorer.New(
		explorer.WithFs(a.fs),
		explorer.WithLogger(a.logger),
		explorer.WithFilterMode(a.cfg.FilterMode()),
		explorer.WithLayout(explorer.Layout{
			MetricsDir:            a.cfg.MetricsDir,
			MetricsExt:            a.cfg.MetricsExt,
			HyperparametersDir:    a.cfg.HyperparametersDir,
			HyperparametersSuffix: a.cfg.HyperparametersSuffix,
		}),
	)
}

// selectedFolders returns the --folder values, or every folder under the
// base directory when none were given.
func (a *app) selectedFolders(cmd *cobra.Command) ([]string, error) {
	folders, _ := cmd.Flags().GetStringArray("folder")
	if len(folders) > 0 {
		return folders, nil
	}

	folders, err := a.explorer().ListFolders(a.cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}
