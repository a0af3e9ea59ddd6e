package main

import "theme-migrator/internal/cli"

func main() {
	cli.Execute()
}
