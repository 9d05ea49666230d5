package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bookstore/internal/job"
	"bookstore/internal/jobs"
)

func init() {
	rootCmd.AddCommand(sweepCmd())
}

func sweepCmd() *cobra.Command {
	var watch bool
	var schedule string

	command := &cobra.Command{
		Use:     "sweep",
		Short:   "remove orphaned folders and tags",
		Example: "bookstore sweep --watch --schedule @hourly",
		Run: func(cmd *cobra.Command, args []string) {
			sweeper := job.NewOrphanSweeper(newStore(), schedule)

			if !watch {
				sweeper.Run()
				return
			}

			runner := jobs.NewRunner(sweeper)
			runner.Start()
			defer runner.Stop()

			logrus.Infof("sweeping on schedule %s, ctrl-c to stop", schedule)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
		},
	}

	command.Flags().BoolVarP(&watch, "watch", "w", false, "keep running on the cron schedule")
	command.Flags().StringVarP(&schedule, "schedule", "s", "@every 10m", "cron schedule for --watch")

	command.Flags().SortFlags = false

	return command
}
