package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd())
}

func searchCmd() *cobra.Command {
	var query string
	var page int
	var pageSize int

	command := &cobra.Command{
		Use:   "search",
		Short: "search bookmarks with the query language",
		Long: `search bookmarks with the query language

tag(a,b) tag(c)     tagged a and b, or tagged c
folder(Dev/Go)      filed exactly at Dev/Go
folders(Dev)        filed anywhere under Dev
url(example.com)    url contains
title(foo)          title contains
intext(needle)      archived page text contains
archived(true)      only archived bookmarks
sort(title, desc)   sort field and direction
bare words          match url, title, tag or folder names`,
		Example: `bookstore search -q "tag(go) folders(Dev) sort(modified, desc)" -p 1 -n 20`,
		Run: func(cmd *cobra.Command, args []string) {
			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			result, err := newService().Search(context.Background(), owner, query, page, pageSize)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Title", "URL", "Folder", "Tags", "Archived"})
			for _, bookmark := range result.Bookmarks {
				folderPath := ""
				if bookmark.Folder != nil {
					folderPath = bookmark.Folder.Path()
				}
				archived := ""
				if bookmark.Archived() {
					archived = "yes"
				}
				table.Append([]string{
					bookmark.ID,
					bookmark.Title,
					bookmark.URL,
					folderPath,
					strings.Join(bookmark.TagNames(), ","),
					archived,
				})
			}
			table.Render()

			logrus.Infof("%d of %d bookmarks matched, page %d of %d",
				result.TotalMatched, result.TotalAll, result.Page, result.PageCount())
		},
	}

	command.Flags().StringVarP(&query, "query", "q", "", "search query, empty uses the owner's default query")
	command.Flags().IntVarP(&page, "page", "p", 1, "page number")
	command.Flags().IntVarP(&pageSize, "page-size", "n", 0, "page size, 0 uses the owner's default")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}
