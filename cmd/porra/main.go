package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"porra/internal/cli"
	"porra/internal/constants"
	fxmodules "porra/internal/fx"
)

func main() {
	os.Exit(run())
}

func run() int {
	var root *cobra.Command
	app := fx.New(
		fxmodules.Module,
		fx.Populate(&root),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), constants.StartTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, "porra:", err)
		return 1
	}

	runErr := root.ExecuteContext(context.Background())

	stopCtx, cancelStop := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, "porra:", err)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, cli.UserMessage(runErr))
		return 1
	}
	return 0
}
