package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bookstore/internal/service"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "archive commands",
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	archiveCmd.AddCommand(setArchiveCmd())
	archiveCmd.AddCommand(getArchiveCmd())
	archiveCmd.AddCommand(dropArchiveCmd())
}

func setArchiveCmd() *cobra.Command {
	var bookmarkID string
	var file string
	var textFile string
	var mime string

	var required = []string{"bookmark-id", "file"}

	command := &cobra.Command{
		Use:     "set",
		Short:   "attach stored page content to a bookmark",
		Example: "bookstore archive set -b <bookmark-id> -f page.html -x page.txt",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			data, err := os.ReadFile(file)
			if err != nil {
				logrus.Error(err)
				return
			}

			request := &service.SetArchiveRequest{
				OwnerID:    owner,
				BookmarkID: bookmarkID,
				Bytes:      data,
				Mime:       mime,
			}
			if textFile != "" {
				text, err := os.ReadFile(textFile)
				if err != nil {
					logrus.Error(err)
					return
				}
				plain := string(text)
				request.PlainText = &plain
			}

			archive, err := newService().SetArchive(context.Background(), request)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("archive created with id: %s", archive.ID)
		},
	}

	command.Flags().StringVarP(&bookmarkID, "bookmark-id", "b", "", "bookmark id (required)")
	command.Flags().StringVarP(&file, "file", "f", "", "page content file (required)")
	command.Flags().StringVarP(&textFile, "text", "x", "", "extracted plain text file, enables intext() search")
	command.Flags().StringVarP(&mime, "mime", "m", "text/html", "content mime type")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}

func getArchiveCmd() *cobra.Command {
	var bookmarkID string
	var out string

	var required = []string{"bookmark-id", "out"}

	command := &cobra.Command{
		Use:     "get",
		Short:   "write a bookmark's archived page content to a file",
		Example: "bookstore archive get -b <bookmark-id> -f page.html",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			archive, err := newService().GetArchive(context.Background(), owner, bookmarkID)
			if err != nil {
				logrus.Error(err)
				return
			}

			if err := os.WriteFile(out, archive.Bytes, 0644); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("wrote %d bytes of %s to %s", len(archive.Bytes), archive.Mime, out)
		},
	}

	command.Flags().StringVarP(&bookmarkID, "bookmark-id", "b", "", "bookmark id (required)")
	command.Flags().StringVarP(&out, "out", "f", "", "output file (required)")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}

func dropArchiveCmd() *cobra.Command {
	var bookmarkID string

	var required = []string{"bookmark-id"}

	command := &cobra.Command{
		Use:     "drop",
		Short:   "detach and delete a bookmark's archive",
		Example: "bookstore archive drop -b <bookmark-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			owner := ownerContext()
			if owner == "" {
				color.Red("missing: --owner (or run `bookstore context set`)")
				return
			}

			if err := newService().DropArchive(context.Background(), owner, bookmarkID); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Info("archive dropped")
		},
	}

	command.Flags().StringVarP(&bookmarkID, "bookmark-id", "b", "", "bookmark id (required)")
	bindOwnerFlag(command)

	command.Flags().SortFlags = false

	return command
}
