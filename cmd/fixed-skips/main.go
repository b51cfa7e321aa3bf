// Package main is the entry point for the fixed-skips CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/fixed-skips/internal/cli"
	"github.com/runoshun/fixed-skips/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit status.
// Every diagnostic goes to stderr; only --help and --version use stdout.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := cli.NewRootCommand(version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil && domain.KindOf(err) != domain.KindPolicyViolation {
		_, _ = fmt.Fprintln(stderr, "fixed-skips:", err)
		if domain.KindOf(err) == domain.KindUsage {
			_, _ = fmt.Fprintln(stderr, "Run 'fixed-skips --help' for usage.")
		}
	}
	return cli.ExitCode(err)
}
