package main

import "clubplan/internal/cli"

func main() {
	cli.Execute()
}
