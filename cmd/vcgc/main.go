package main

import (
	"os"

	"github.com/vcglab/vcgc/cmd/vcgc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
