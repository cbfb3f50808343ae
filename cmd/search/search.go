/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package search

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/pkg/catalog"
)

// SearchCmd represents the search command
var SearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "find books by title, author or year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.OpenConfigured()
		if err != nil {
			return err
		}
		defer c.Close()

		results := c.Search(args[0])
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing found.")
			return nil
		}
		for _, book := range results {
			fmt.Fprintln(cmd.OutOrStdout(), book)
		}
		return nil
	},
}
