package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/reconcile"
)

// newDirCmd creates the dir command
func newDirCmd(a *app) *cobra.Command {
	var (
		temp  bool
		owner string
		group string
		mode  = newModeFlag()
		mtime = newTimeFlag()
	)

	cmd := &cobra.Command{
		Use:     "dir PATH",
		Short:   MsgDirShort,
		Long:    MsgDirLong,
		Example: MsgDirExample,
		GroupID: "ops",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reconcile.DirectoryOptions{
				Temp:       temp,
				Owner:      owner,
				Group:      group,
				Mode:       mode.Value(),
				MTime:      mtime.Value(),
				KeepsState: a.keepState,
			}

			var outcome reconcile.Outcome
			if err := a.perform(func() error {
				outcome = a.rec.Directory(args[0], opts)
				return nil
			}); err != nil {
				return err
			}
			return a.report("dir", args[0], outcome)
		},
	}

	cmd.Flags().BoolVar(&temp, "temp", false, MsgFlagTemp)
	cmd.Flags().StringVar(&owner, "owner", "", MsgFlagOwner)
	cmd.Flags().StringVar(&group, "group", "", MsgFlagGroup)
	cmd.Flags().Var(mode, "mode", MsgFlagMode)
	cmd.Flags().Var(mtime, "mtime", MsgFlagMTime)

	return cmd
}
