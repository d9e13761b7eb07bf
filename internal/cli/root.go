package cli

import (
	"context"
	"io"
)

// Execute builds the command tree and runs it with args.
// Logs go to stderr; command output goes to stdout.
//
// Example:
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//	if err := cli.Execute(ctx, os.Args[1:], os.Stderr); err != nil {
//	    os.Exit(1)
//	}
func Execute(ctx context.Context, args []string, stderr io.Writer) error {
	c := New(stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}
