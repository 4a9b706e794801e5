package main

import (
	"Recipe-Publisher/cmd/commands"
)

func main() {
	commands.Execute()
}
