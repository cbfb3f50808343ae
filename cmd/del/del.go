/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package del

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/pkg/catalog"
)

// DeleteCmd represents the delete command
var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "delete a book by id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.OpenConfigured()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Delete(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Book deleted.")
		return nil
	},
}
