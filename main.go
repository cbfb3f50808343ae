/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/xiaomi388/bookshelf/cmd"

func main() {
	cmd.Execute()
}
