package main

import "github.com/goliatone/go-currency-input/internal/cli"

// Version is set via ldflags during build
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	cli.Execute()
}
