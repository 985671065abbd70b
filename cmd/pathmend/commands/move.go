package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/reconcile"
)

// newMoveCmd creates the move command
func newMoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move SRC DEST",
		Short:   MsgMoveShort,
		Long:    MsgMoveLong,
		Example: MsgMoveExample,
		GroupID: "ops",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reconcile.MoveOptions{
				KeepsState: a.keepState,
			}

			var outcome reconcile.Outcome
			if err := a.perform(func() error {
				outcome = a.rec.Move(args[0], args[1], opts)
				return nil
			}); err != nil {
				return err
			}
			return a.report("move", args[1], outcome)
		},
	}

	return cmd
}
