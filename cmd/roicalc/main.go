package main

import (
	"fmt"
	"os"

	"github.com/airoi/roi-calculator/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}
	defer func() {
		if app.Logger != nil {
			_ = app.Logger.Sync()
		}
	}()
	return cli.NewRootCmd(app).Execute()
}
