package main

import "routelens/cmd/routelens/commands"

func main() {
	commands.Execute()
}
