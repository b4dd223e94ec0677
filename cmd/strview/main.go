package main

import (
	"os"

	"github.com/msto63/strview/cmd/strview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
