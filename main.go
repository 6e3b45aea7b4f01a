package main

import (
	"os"

	"github.com/protonsvc/rasa-nlg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
