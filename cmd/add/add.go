/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package add

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/pkg/catalog"
)

var (
	title  *string
	author *string
	year   *string
)

// AddCmd represents the add command
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "add a book to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := catalog.OpenConfigured()
		if err != nil {
			return err
		}
		defer c.Close()

		book, err := c.Add(*title, *author, *year)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), book.ID)
		return nil
	},
}

func init() {
	title = AddCmd.Flags().String("title", "", "title of the book")
	_ = AddCmd.MarkFlagRequired("title")

	author = AddCmd.Flags().String("author", "", "author of the book")
	_ = AddCmd.MarkFlagRequired("author")

	year = AddCmd.Flags().String("year", "", "publication year")
	_ = AddCmd.MarkFlagRequired("year")
}
