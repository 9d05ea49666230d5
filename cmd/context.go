package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "bookstore"
)

var Owner string

var contextCommand = &cobra.Command{
	Use:   "context",
	Short: "context commands",
}

func init() {
	rootCmd.AddCommand(contextCommand)
	contextCommand.AddCommand(setContextCommand())
	contextCommand.AddCommand(currentContextCommand())
}

type Context struct {
	Owner string `json:"owner"`
}

// saves the context info to the config file in ./.tmp
func setContextCommand() *cobra.Command {
	var owner string
	command := &cobra.Command{
		Use:   "set",
		Short: "set the default owner",
		Run: func(cmd *cobra.Command, args []string) {
			if owner == "" {
				color.Red(`missing: --owner`)
				return
			}

			writeContext(Context{Owner: owner})
			fmt.Println("context saved")
		},
	}

	command.Flags().StringVarP(&owner, "owner", "o", "", "owner id")

	return command
}

func currentContextCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "current",
		Short: "show the current context",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("owner:", readContext().Owner)
		},
	}

	return command
}

func writeContext(context Context) {
	viper.SetConfigName(configFileName)
	viper.AddConfigPath("./.tmp")
	viper.SetConfigType("yml")
	viper.Set("context", context)

	if err := viper.WriteConfig(); err != nil {
		fmt.Println("error writing config file: ", err)
	}
}

func readContext() Context {
	var ctx Context

	// create file if it doesn't exist
	if _, err := os.Stat("./.tmp/" + configFileName + ".yml"); os.IsNotExist(err) {
		if err := os.MkdirAll("./.tmp", os.ModePerm); err != nil {
			fmt.Println("error creating config dir: ", err)
		}
		file, err := os.Create("./.tmp/" + configFileName + ".yml")
		if err != nil {
			fmt.Println("error creating config file: ", err)
		}
		err = file.Close()
		if err != nil {
			panic(err)
		}
	}

	viper.SetConfigName(configFileName)
	viper.AddConfigPath("./.tmp")
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("error reading config file: ", err)
	}

	if err := viper.UnmarshalKey("context", &ctx); err != nil {
		fmt.Println("error unmarshalling config file: ", err)
	}

	return ctx
}

func bindOwnerFlag(command *cobra.Command) {
	command.Flags().StringVarP(&Owner, "owner", "o", "", "owner id")
}

// ownerContext resolves the owner from the --owner flag or the saved
// context file.
func ownerContext() string {
	if Owner != "" {
		return Owner
	}

	return readContext().Owner
}
