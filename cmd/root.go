/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/cmd/add"
	"github.com/xiaomi388/bookshelf/cmd/del"
	"github.com/xiaomi388/bookshelf/cmd/list"
	"github.com/xiaomi388/bookshelf/cmd/migrate"
	"github.com/xiaomi388/bookshelf/cmd/search"
	"github.com/xiaomi388/bookshelf/cmd/shell"
	"github.com/xiaomi388/bookshelf/cmd/status"
	"github.com/xiaomi388/bookshelf/pkg/config"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "A personal library catalog",
	Long: `bookshelf keeps a catalog of books in a JSON file and lets you add, delete,
search, list and check books in and out.

Run it without a subcommand to open the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              shell.ShellCmd.RunE,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = logrus.DebugLevel
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp: true,
	})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config", config.DefaultConfigPath, "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(shell.ShellCmd)
	rootCmd.AddCommand(add.AddCmd)
	rootCmd.AddCommand(del.DeleteCmd)
	rootCmd.AddCommand(search.SearchCmd)
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(status.StatusCmd)
	rootCmd.AddCommand(migrate.MigrateCmd)
}
