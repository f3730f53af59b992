package main

import (
	"fmt"
	"os"

	"github.com/skyforge/skyforge/cmd/cli/commands"
	"github.com/skyforge/skyforge/config"
	"github.com/skyforge/skyforge/internal/logger"
)

func main() {
	config.LoadEnv()
	logger.InitializeAndConfigure()

	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
