// Command socialnet generates a random social network and writes its
// friendship edges as TSV.
//
// Usage:
//
//	socialnet [-env file] [-out path] [-seed n] [-verify]
//
// Settings come from SOCIALNET_* environment variables (optionally loaded
// from a .env file); flags override them. A short preview of the edges is
// printed to stdout, logs go to stderr.
//
// Exit status: 0 on success, 2 for invalid configuration, 1 for any other
// failure.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
