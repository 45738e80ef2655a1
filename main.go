package main

import "github.com/diogo/sopchat/internal/commands"

func main() {
	commands.Execute()
}
