package main

import (
	"os"

	"ortwheel/internal/cli"
)

func main() { os.Exit(cli.Main()) }
