// SPDX-License-Identifier: MIT

// Command conlat computes congruence lattices of finite algebras.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/conlat/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
