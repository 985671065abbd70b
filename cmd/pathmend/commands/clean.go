package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/reconcile"
)

// newCleanCmd creates the clean command
func newCleanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clean PATH",
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		GroupID: "ops",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reconcile.CleanupOptions{
				KeepsState: a.keepState,
			}

			var outcome reconcile.Outcome
			if err := a.perform(func() error {
				outcome = a.rec.Cleanup(args[0], opts)
				return nil
			}); err != nil {
				return err
			}
			return a.report("clean", args[0], outcome)
		},
	}

	return cmd
}
