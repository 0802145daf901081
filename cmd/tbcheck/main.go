package main

import (
	"os"

	"github.com/sblr80595/financialreporting-sub000/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
