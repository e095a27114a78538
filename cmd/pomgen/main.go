package main

import "pomgen/internal/cli"

func main() {
	cli.Execute()
}
