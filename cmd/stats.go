package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress per course",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return fmt.Errorf("open progress: %w", err)
		}
		defer cleanup()

		fmt.Printf("%-28s %-12s %8s %10s\n", "COURSE", "STATUS", "PERCENT", "LESSONS")
		for _, courseID := range deps.Nav.OrderedCourses() {
			lessons := deps.Nav.OrderedLessons(courseID)
			completed, total := deps.Tracker.HeaderCounts(courseID, len(lessons))
			fmt.Printf("%-28s %-12s %7.0f%% %7d/%d\n",
				deps.Nav.CourseTitle(courseID),
				deps.Tracker.CourseStatus(courseID),
				deps.Tracker.CoursePercent(courseID)*100,
				completed, total,
			)
		}
		return nil
	},
}
