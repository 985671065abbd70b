package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/reconcile"
)

// newStatusCmd creates the status command
func newStatusCmd(a *app) *cobra.Command {
	var (
		owner string
		group string
		mode  = newModeFlag()
		mtime = newTimeFlag()
	)

	cmd := &cobra.Command{
		Use:     "status PATH",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "ops",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reconcile.StatusOptions{
				Owner:      owner,
				Group:      group,
				Mode:       mode.Value(),
				MTime:      mtime.Value(),
				KeepsState: a.keepState,
			}

			var outcome reconcile.Outcome
			if err := a.perform(func() error {
				outcome = a.rec.Status(args[0], opts)
				return nil
			}); err != nil {
				return err
			}
			return a.report("status", args[0], outcome)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", MsgFlagOwner)
	cmd.Flags().StringVar(&group, "group", "", MsgFlagGroup)
	cmd.Flags().Var(mode, "mode", MsgFlagMode)
	cmd.Flags().Var(mtime, "mtime", MsgFlagMTime)

	return cmd
}
