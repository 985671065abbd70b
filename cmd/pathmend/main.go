package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pathmend/pathmend/cmd/pathmend/commands"
	"github.com/pathmend/pathmend/pkg/reconcile"
)

func main() {
	os.Exit(run())
}

// run wraps the command execution so deferred cleanup happens before the
// process exits.
func run() int {
	defer reconcile.CleanupTempDirs()

	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Reconciliation failures are already rendered; anything else
		// still needs to reach the user.
		if !errors.Is(err, commands.ErrOperationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
