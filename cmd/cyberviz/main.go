package main

import (
	"fmt"
	"os"
	"strings"

	"cyberviz/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
