// Package main is the entry point for the spade CLI application.
package main

import (
	"spade/cli/cmd"
)

func main() {
	cmd.Execute()
}
