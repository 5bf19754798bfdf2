package commands

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/logan/internal/domain"
)

// NewCacheCommand creates the cache command with all subcommands
func NewCacheCommand(container ContainerFunc) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the merged configuration cache",
	}

	cacheCmd.AddCommand(
		newCacheInfoCommand(container),
		newCacheClearCommand(container),
	)

	return cacheCmd
}

// newCacheInfoCommand creates the 'cache info' subcommand
func newCacheInfoCommand(container ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location, size and state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			if c == nil {
				return errors.New(ErrContainerUnavailable)
			}
			info, err := c.CacheStore.Info(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read cache: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cache file: %s\n", info.Path)
			if !info.Exists {
				fmt.Fprintln(out, MsgCacheEmpty)
				return nil
			}
			fmt.Fprintf(out, "Size: %s\n", humanize.Bytes(uint64(info.SizeBytes)))
			fmt.Fprintf(out, "Entries: %d\n", info.Entries)
			fmt.Fprintf(out, "Config cached: %t\n", c.CacheStore.Contains(cmd.Context(), domain.CacheKey))
			return nil
		},
	}
}

// newCacheClearCommand creates the 'cache clear' subcommand
func newCacheClearCommand(container ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the cached configuration so the next command reloads it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			if c == nil {
				return errors.New(ErrContainerUnavailable)
			}
			if err := c.CacheStore.Delete(cmd.Context(), domain.CacheKey); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgCacheCleared)
			return nil
		},
	}
}
