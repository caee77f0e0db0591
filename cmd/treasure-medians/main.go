package main

import "github.com/pfrederiksen/treasure-medians/internal/cli"

func main() {
	cli.Execute()
}
