package main

import (
	"os"

	"github.com/sebamiro/randomorg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
