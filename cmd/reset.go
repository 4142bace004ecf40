package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learning progress",
	Long:  "Reset all progress, one course (--course), or one lesson (--course + --lesson).",
	RunE: func(cmd *cobra.Command, args []string) error {
		course, _ := cmd.Flags().GetString("course")
		lesson, _ := cmd.Flags().GetString("lesson")
		if lesson != "" && course == "" {
			return fmt.Errorf("--lesson requires --course")
		}

		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return fmt.Errorf("open progress: %w", err)
		}
		defer cleanup()

		switch {
		case lesson != "":
			deps.Tracker.ResetLesson(course, lesson)
			fmt.Printf("Reset lesson %s in course %s.\n", lesson, course)
		case course != "":
			deps.Tracker.ResetCourse(course)
			fmt.Printf("Reset course %s.\n", course)
		default:
			deps.Tracker.ResetAll()
			fmt.Println("Reset all progress.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().String("course", "", "Course ID to reset")
	resetCmd.Flags().String("lesson", "", "Lesson ID to reset (requires --course)")
}
