/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package list

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/pkg/catalog"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "list every book in the catalog",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := catalog.OpenConfigured()
		if err != nil {
			return err
		}
		defer c.Close()

		if c.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty.")
			return nil
		}
		for _, book := range c.List() {
			fmt.Fprintln(cmd.OutOrStdout(), book)
		}
		return nil
	},
}
