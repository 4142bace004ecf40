package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pattarin/rianthai/internal/catalog"
	"github.com/pattarin/rianthai/internal/events"
	"github.com/pattarin/rianthai/internal/favorites"
	"github.com/pattarin/rianthai/internal/nav"
	"github.com/pattarin/rianthai/internal/progress"
	"github.com/pattarin/rianthai/internal/screens"
	"github.com/pattarin/rianthai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "rianthai",
	Short: "Learn Thai in your terminal",
	Long:  "Rianthai (เรียนไทย) — terminal app for learning Thai through card-based lessons.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RIANTHAI_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then RIANTHAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// buildDeps opens the store and wires the full service graph. The
// returned cleanup flushes pending progress writes and closes the store.
func buildDeps(cmd *cobra.Command) (screens.Deps, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return screens.Deps{}, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return screens.Deps{}, nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	bus := events.NewBus(log)

	tracker := progress.NewTracker(st.ProgressRepo(), log)
	tracker.Attach(bus)

	favs := favorites.New(st.FavoritesRepo(), log)
	favs.Attach(bus)

	cat := catalog.Builtin()

	deps := screens.Deps{
		Tracker:   tracker,
		Nav:       nav.New(cat),
		Catalog:   cat,
		Favorites: favs,
		Bus:       bus,
	}
	cleanup := func() {
		tracker.Flush()
		bus.Close()
		st.Close()
	}
	return deps, cleanup, nil
}
