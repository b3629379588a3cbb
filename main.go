package main

import "github.com/mcheemaa/axpilot/cmd"

func main() {
	cmd.Execute()
}
