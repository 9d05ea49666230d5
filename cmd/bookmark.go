package cmd

import (
	"context"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bookstore/internal/service"
)

func init() {
	rootCmd.AddCommand(addBookmarkCmd())
	rootCmd.AddCommand(updateBookmarkCmd())
	rootCmd.AddCommand(deleteBookmarkCmd())
}

func addBookmarkCmd() *cobra.Command {
	var url string
	var title string
	var folder string
	var tags string

	var required = []string{"url"}

	command := &cobra.Command{
		Use:     "add",
		Short:   "add a bookmark",
		Example: `bookstore add -u https://example.com -t "Example" -f "Dev/Go" -g go,web`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			var tagNames []string
			if tags != "" {
				tagNames = strings.Split(tags, ",")
			}

			bookmark, err := newService().AddBookmark(context.Background(), &service.AddBookmarkRequest{
				OwnerID: owner,
				URL:     url,
				Title:   title,
				Folder:  folder,
				Tags:    tagNames,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("bookmark created with id: %s", bookmark.ID)
		},
	}

	command.Flags().StringVarP(&url, "url", "u", "", "bookmark url (required)")
	command.Flags().StringVarP(&title, "title", "t", "", "bookmark title")
	command.Flags().StringVarP(&folder, "folder", "f", "", `folder path, e.g. "Dev/Go"`)
	command.Flags().StringVarP(&tags, "tags", "g", "", "comma separated tag names")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}

func updateBookmarkCmd() *cobra.Command {
	var bookmarkID string
	var url string
	var title string
	var folder string
	var tags string

	var required = []string{"bookmark-id"}

	command := &cobra.Command{
		Use:     "update",
		Short:   "update a bookmark, re-filing its folder and tags",
		Example: `bookstore update -b <bookmark-id> -f "Reading/Later" -g later`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			var tagNames []string
			if tags != "" {
				tagNames = strings.Split(tags, ",")
			}

			bookmark, err := newService().UpdateBookmark(context.Background(), &service.UpdateBookmarkRequest{
				OwnerID:    owner,
				BookmarkID: bookmarkID,
				URL:        url,
				Title:      title,
				Folder:     folder,
				Tags:       tagNames,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("bookmark %s updated", bookmark.ID)
		},
	}

	command.Flags().StringVarP(&bookmarkID, "bookmark-id", "b", "", "bookmark id (required)")
	command.Flags().StringVarP(&url, "url", "u", "", "new url, empty keeps the current one")
	command.Flags().StringVarP(&title, "title", "t", "", "new title, empty keeps the current one")
	command.Flags().StringVarP(&folder, "folder", "f", "", "new folder path, empty moves the bookmark to the root")
	command.Flags().StringVarP(&tags, "tags", "g", "", "comma separated tag names, replaces the current set")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}

func deleteBookmarkCmd() *cobra.Command {
	var ids string

	var required = []string{"bookmark-id"}

	command := &cobra.Command{
		Use:     "delete",
		Short:   "delete bookmarks and sweep orphaned folders and tags",
		Example: "bookstore delete -b <id1>,<id2>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			reclaimed, err := newService().DeleteBookmarks(context.Background(), owner, strings.Split(ids, ","))
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("deleted bookmarks, reclaimed %d folders, %d tags, %d archives",
				len(reclaimed.Folders), len(reclaimed.Tags), len(reclaimed.Archives))
		},
	}

	command.Flags().StringVarP(&ids, "bookmark-id", "b", "", "comma separated bookmark ids (required)")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}
