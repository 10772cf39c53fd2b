package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/go-faster/sarc/cmd/sarc/cmd"
)

func main() {
	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := cmd.NewCommand(lg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
