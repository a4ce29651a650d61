package main

import (
	"os"

	"github.com/BenjaminOlsen/polynomials/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
