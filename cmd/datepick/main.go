package main

import (
	"fmt"
	"os"

	"datepick/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "datepick: %v\n", err)
		os.Exit(1)
	}
}
