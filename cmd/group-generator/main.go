package main

import (
	"os"

	"github.com/unimelb-cmce-10002/group-generator/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
