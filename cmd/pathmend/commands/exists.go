package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/output"
)

// newExistsCmd creates the exists command
func newExistsCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:     "exists PATH",
		Short:   MsgExistsShort,
		Long:    MsgExistsLong,
		GroupID: "query",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var present bool
			switch kind {
			case "any", "":
				present = a.rec.AnyExists(args[0])
			case "file":
				present = a.rec.FileExists(args[0])
			case "dir", "directory":
				present = a.rec.DirectoryExists(args[0])
			case "symlink":
				present = a.rec.IsSymlink(args[0])
			default:
				return errors.Newf(errors.ErrValidation, "unknown existence type %q", kind)
			}

			if err := a.renderer.Existence(output.Existence{Path: args[0], Exists: present}); err != nil {
				return err
			}
			if !present {
				return ErrOperationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "any", MsgFlagType)

	return cmd
}
