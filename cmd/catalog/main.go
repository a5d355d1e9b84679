package main

import "github.com/narwhalmedia/catalog/cmd/catalog/commands"

func main() {
	commands.Execute()
}
