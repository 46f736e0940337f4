package main

import (
	"os"

	"github.com/sm8ta/webike_bicycle_manager/internal/cli"
)

// @title Bicycles API
// @version 1.0
// @description Reference backend for the bicycle manager

// @host localhost:3001
// @BasePath /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
