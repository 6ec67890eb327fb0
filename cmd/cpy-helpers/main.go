package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose(), Getenv: os.Getenv}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode keeps "nothing attached" (probe --strict) apart from real failures.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrNoBoard) {
		return 2
	}
	return 1
}

func isVerbose() bool {
	value := os.Getenv(domain.DebugEnvVar)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
