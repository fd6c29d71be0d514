package main

import (
	"os"

	"github.com/abhisek/disha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
