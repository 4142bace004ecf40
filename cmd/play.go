package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pattarin/rianthai/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start learning",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return fmt.Errorf("start app: %w", err)
		}
		defer cleanup()

		return app.Run(deps)
	},
}
