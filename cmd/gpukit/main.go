package main

import (
	"os"

	"github.com/tsingmao/gpukit/cmd/gpukit/app"
)

func main() {
	if err := app.NewGPUKitCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
