package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/drilld/internal/settings"
	"github.com/sandeepkv93/drilld/internal/skills"
	"github.com/sandeepkv93/drilld/internal/speech"
	"github.com/sandeepkv93/drilld/internal/storage"
	"github.com/sandeepkv93/drilld/internal/update"
)

var (
	flagDBPath string
	flagMute   bool
)

var rootCmd = &cobra.Command{
	Use:   "drilld",
	Short: "Practice reminders for hero shooter drills",
	Long: `drilld runs a practice session timer in the terminal.

Pick a skill to drill, start a session, and drilld speaks the skill's
reminder phrase at the configured interval so you can keep your eyes
on the game. Skills, filters, and settings persist across runs.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&flagDBPath, "db", "", "sqlite database path (default .drilld.db, or DRILLD_DB_PATH)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "disable speech output")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if flagDBPath != "" {
		cfg.DatabasePath = flagDBPath
	}
	if flagMute {
		cfg.Muted = true
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := storage.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store := settings.NewStore(repo, logger)
	store.Load(ctx)

	manager := skills.NewManager(repo, logger)
	manager.Load(ctx)
	defer manager.Close()

	var speaker speech.Speaker = speech.NoopSpeaker{}
	if !cfg.Muted {
		speaker = speech.NewExecSpeaker(logger)
	}

	model := update.NewModelWithConfig(manager, store, speaker, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
