package main

import (
	"os"

	"github.com/griciko/QuizN2/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
