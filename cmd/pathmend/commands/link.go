package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/reconcile"
)

// newLinkCmd creates the link command
func newLinkCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "link TARGET LINK",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "ops",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reconcile.LinkOptions{
				Check:      check,
				Force:      a.force,
				KeepsState: a.keepState,
			}

			var outcome reconcile.Outcome
			if err := a.perform(func() error {
				outcome = a.rec.Symlink(args[0], args[1], opts)
				return nil
			}); err != nil {
				return err
			}
			return a.report("link", args[1], outcome)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)

	return cmd
}

// newHardlinkCmd creates the hardlink command
func newHardlinkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hardlink TARGET LINK",
		Short:   MsgHardlinkShort,
		Long:    MsgHardlinkLong,
		GroupID: "ops",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reconcile.LinkOptions{
				Force:      a.force,
				KeepsState: a.keepState,
			}

			var outcome reconcile.Outcome
			if err := a.perform(func() error {
				outcome = a.rec.Hardlink(args[0], args[1], opts)
				return nil
			}); err != nil {
				return err
			}
			return a.report("hardlink", args[1], outcome)
		},
	}

	return cmd
}
