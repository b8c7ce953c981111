//go:build !tinygo

package main

import (
	"os"

	"zuluface/cmd/zulusync/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
