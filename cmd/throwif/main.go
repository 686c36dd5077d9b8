package main

import (
	"errors"
	"os"

	"github.com/msto63/throwif/cmd/throwif/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrProblemsFound) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
