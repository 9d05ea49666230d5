package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bookstore/internal/service"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "settings commands",
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	settingsCmd.AddCommand(getSettingsCmd())
	settingsCmd.AddCommand(setSettingsCmd())
}

func getSettingsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "get",
		Short: "show the owner's settings",
		Run: func(cmd *cobra.Command, args []string) {
			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			settings, err := newService().GetSettings(context.Background(), owner)
			if err != nil {
				logrus.Error(err)
				return
			}

			fmt.Println("default query:", settings.DefaultQuery)
			fmt.Println("default page size:", settings.DefaultPageSize)
			fmt.Println("archive by default:", settings.ArchiveByDefault)
		},
	}

	bindOwnerFlag(command)

	return command
}

func setSettingsCmd() *cobra.Command {
	var defaultQuery string
	var defaultPageSize int
	var archiveByDefault bool

	command := &cobra.Command{
		Use:     "set",
		Short:   "update the owner's settings",
		Example: `bookstore settings set -q "sort(modified, desc)" -n 50`,
		Run: func(cmd *cobra.Command, args []string) {
			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			settings, err := newService().UpdateSettings(context.Background(), &service.UpdateSettingsRequest{
				OwnerID:          owner,
				DefaultQuery:     defaultQuery,
				DefaultPageSize:  defaultPageSize,
				ArchiveByDefault: archiveByDefault,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("settings saved, default page size %d", settings.DefaultPageSize)
		},
	}

	command.Flags().StringVarP(&defaultQuery, "default-query", "q", "", "query used when search gets an empty query")
	command.Flags().IntVarP(&defaultPageSize, "page-size", "n", 0, "default page size, 0 keeps the current value")
	command.Flags().BoolVarP(&archiveByDefault, "archive-by-default", "a", false, "archive new bookmarks by default")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}
