/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package shell

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/pkg/catalog"
	"github.com/xiaomi388/bookshelf/pkg/shell"
)

// ShellCmd represents the shell command
var ShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "open the interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := catalog.OpenConfigured()
		if c == nil {
			return err
		}
		defer c.Close()

		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Failed to load the catalog, starting empty: %v\n", err)
		}

		if err := shell.New(c, cmd.InOrStdin(), cmd.OutOrStdout()).Run(); err != nil {
			logrus.WithError(err).Error("failed to read input")
		}
		return nil
	},
}
