package main

import "aventra/internal/cli"

func main() {
	cli.Execute()
}
