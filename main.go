package main

import "github.com/swistaczek/ruby-snippets/cmd"

func main() {
	cmd.Execute()
}
