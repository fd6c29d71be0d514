package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/disha/internal/config"
	"github.com/abhisek/disha/internal/store"
	"github.com/abhisek/disha/internal/webhook"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "disha",
	Short: "Career direction quiz for Indian students",
	Long:  "Disha — terminal career-discovery quiz that scores interests across 18 tracks and recommends streams, exams, and next steps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DISHA_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/disha/config.yaml)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// search path when the flag is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then DISHA_DB env / the XDG default.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the SQLite store for a CLI command.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}

// newHook builds the webhook client from config. Returns nil when no
// webhook URL is configured.
func newHook(cfg config.Config) *webhook.Client {
	if cfg.Webhook.URL == "" {
		return nil
	}
	log, err := zap.NewProduction()
	if err != nil {
		log = zap.NewNop()
	}
	return webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.Timeout(), log)
}
