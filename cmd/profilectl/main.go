package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klwxsrx/profile-client/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/profile-client/pkg/cmd"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	ctx, cancel := pkgcmd.WithTermSignals(context.Background())
	defer cancel()

	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	root := newRootCommand(infra, os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
