/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package status

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/pkg/catalog"
	"github.com/xiaomi388/bookshelf/pkg/types"
)

// StatusCmd represents the status command
var StatusCmd = &cobra.Command{
	Use:       "status <id> <available|checked-out>",
	Short:     "change the status of a book",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(types.StatusAvailable), string(types.StatusCheckedOut)},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.OpenConfigured()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.UpdateStatus(args[0], types.Status(args[1])); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Book status updated.")
		return nil
	},
}
