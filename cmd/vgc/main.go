package main

import (
	"os"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
