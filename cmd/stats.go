package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd())
}

func statsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "stats",
		Short:   "show collection stats for the owner",
		Example: "bookstore stats -o <owner-id>",
		Run: func(cmd *cobra.Command, args []string) {
			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			stats, err := newService().Stats(context.Background(), owner)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Bookmarks", "Archived", "Folders", "Tags", "Archive Bytes"})
			table.Append([]string{
				strconv.Itoa(stats.Bookmarks),
				strconv.Itoa(stats.Archived),
				strconv.Itoa(stats.Folders),
				strconv.Itoa(stats.Tags),
				strconv.FormatInt(stats.ArchiveBytes, 10),
			})
			table.Render()
		},
	}

	bindOwnerFlag(command)

	return command
}
