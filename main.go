package main

import (
	"os"

	"github.com/Maho1100/minaria-quest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
