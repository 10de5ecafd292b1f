// Package cmdutil provides helpers for running commands outside main, such
// as from tests or other commands.
package cmdutil

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/cmd/globals"
)

// Result holds the captured streams of a command run.
type Result struct {
	Stdout string
	Stderr string
}

// NewRoot returns a bare root command carrying the global flags, with cmds
// attached. Groups used by the commands are registered so cobra accepts them.
func NewRoot(cmds ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{
		Use:           "bibliotheque",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	root.AddGroup(&cobra.Group{ID: "management", Title: "Management Commands:"})
	globals.AddFlags(root)
	root.AddCommand(cmds...)
	return root
}

// Execute runs cmd under a fresh root with the given stdin and arguments.
// args start with cmd's own name, e.g. "list", "-o", "json".
func Execute(ctx context.Context, cmd *cobra.Command, stdin string, args ...string) (Result, error) {
	root := NewRoot(cmd)

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
