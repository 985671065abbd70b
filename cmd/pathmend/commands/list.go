package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/output"
	"github.com/pathmend/pathmend/pkg/reconcile"
)

// newListCmd creates the list command
func newListCmd(a *app) *cobra.Command {
	var (
		filter  string
		files   bool
		inverse bool
		addDir  bool
	)

	cmd := &cobra.Command{
		Use:     "list DIR",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "query",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reconcile.ListDirOptions{
				Filter:     filter,
				FileExists: files,
				Inverse:    inverse,
				AddDir:     addDir,
			}

			var entries []string
			var listErr error
			if err := a.perform(func() error {
				entries, listErr = a.rec.ListDir(args[0], opts)
				return nil
			}); err != nil {
				return err
			}

			if listErr != nil {
				return a.report("list", args[0], reconcile.Outcome{
					State: reconcile.StateFailed,
					Err:   listErr,
				})
			}

			// Machine formats get the structured result; for humans the
			// entries alone are the answer.
			switch a.format {
			case output.FormatJSON, output.FormatYAML:
				return a.renderer.Result(output.Result{
					Op:      "list",
					Path:    args[0],
					State:   string(reconcile.StateUnchanged),
					Entries: entries,
				})
			default:
				if len(entries) == 0 {
					return nil
				}
				return a.renderer.Raw(strings.Join(entries, "\n"))
			}
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", MsgFlagFilter)
	cmd.Flags().BoolVar(&files, "files", false, MsgFlagFiles)
	cmd.Flags().BoolVar(&inverse, "inverse", false, MsgFlagInverse)
	cmd.Flags().BoolVar(&addDir, "add-dir", false, MsgFlagAddDir)

	return cmd
}
