// Package main is the entry point for the iconaudit CLI.
package main

import (
	"os"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/cmd/iconaudit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
