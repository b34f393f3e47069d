package main

import (
	"os"

	"github.com/lastings-labs/bankgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
