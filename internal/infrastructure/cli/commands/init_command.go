package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/doeshing/logan/assets"
	"github.com/doeshing/logan/internal/domain"
)

// NewInitCommand creates the init command that lays out the logan root.
// Existing files are never overwritten.
func NewInitCommand(container ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the logan root directory with default configuration",
		Long: `Create the logan root directory layout:

  <root>/loganrc.default   shipped actions
  <root>/loganrc           your overrides
  <root>/actions/          executables, one sub-directory per context,
                           seeded with the scripts of the shipped actions

Existing files are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			if c == nil {
				return errors.New(ErrContainerUnavailable)
			}
			if err := initLayout(c.Layout); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgInitCompleted, c.Layout.Root)
			return nil
		},
	}
}

func initLayout(layout domain.Layout) error {
	if err := os.MkdirAll(layout.ActionsDir, domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create actions dir: %w", err)
	}
	if err := writeIfMissing(layout.DefaultConfigPath, assets.DefaultConfigYAML, domain.ConfigFilePermissions); err != nil {
		return err
	}
	if err := writeIfMissing(layout.UserConfigPath, assets.UserConfigYAML, domain.ConfigFilePermissions); err != nil {
		return err
	}
	return writeActionScripts(layout.ActionsDir)
}

func writeActionScripts(actionsDir string) error {
	entries, err := fs.ReadDir(assets.ActionScripts, assets.ActionScriptsDir)
	if err != nil {
		return fmt.Errorf("read shipped actions: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(assets.ActionScripts, path.Join(assets.ActionScriptsDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read shipped action %s: %w", entry.Name(), err)
		}
		if err := writeIfMissing(filepath.Join(actionsDir, entry.Name()), data, domain.ExecutablePermissions); err != nil {
			return err
		}
	}
	return nil
}

func writeIfMissing(dst string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return f.Close()
}
