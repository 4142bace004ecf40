package main

import (
	"os"

	"github.com/pattarin/rianthai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
