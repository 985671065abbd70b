package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/pkg/config"
	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/output"
	"github.com/pathmend/pathmend/pkg/paths"
)

// newConfigCmd creates the config command group
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))

	return cmd
}

// newConfigInitCmd creates the config init command
func newConfigInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgConfigInit,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.ConfigFilePath()
			if _, err := os.Stat(path); err == nil && !a.force {
				return errors.Newf(errors.ErrValidation, MsgConfigInitExists, path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrOS, "cannot create config directory for %s", path)
			}
			if err := os.WriteFile(path, []byte(config.GenerateConfigContent()), 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrOS, "cannot write %s", path)
			}

			return a.renderer.Raw(fmt.Sprintf(MsgConfigInitDone, path))
		},
	}
}

// newConfigShowCmd creates the config show command
func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShow,
		Long:  MsgConfigShowLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch a.format {
			case output.FormatJSON, output.FormatYAML:
				return a.renderer.Document(a.cfg)
			default:
				rendered, err := a.cfg.Render()
				if err != nil {
					return err
				}
				return a.renderer.Raw(rendered)
			}
		},
	}
}
