// Package main implements the MCP server for media vaults.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mediavault/mediavault-mcp/internal/catalog"
	"github.com/mediavault/mediavault-mcp/internal/config"
	"github.com/mediavault/mediavault-mcp/internal/mediafilter"
	"github.com/mediavault/mediavault-mcp/internal/types"
	"github.com/mediavault/mediavault-mcp/internal/vault"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var (
	vaultService   *vault.Service
	catalogService *catalog.Service

	configPath string
)

func main() {
	cmd := &cobra.Command{
		Use:   "mediavault-mcp [vault-path]",
		Short: "MCP bridge for media vaults",
		Long: `mediavault-mcp exposes a media vault (a pictures and videos tree on local
disk or a NAS mount) to MCP clients over stdio.

All tools are read-only: they enumerate entries, report metadata, and build
collection statistics. Every path is resolved against the vault root and
requests that escape it are rejected.`,
		Example: `  mediavault-mcp /mnt/truenas/pictures`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServer,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration file")
	cmd.AddCommand(convertCommand())

	if err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	vaultRoot := cfg.Root
	if len(args) > 0 {
		vaultRoot = args[0]
	}
	if vaultRoot == "" {
		vaultRoot, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	filter := mediafilter.New(&types.FilterConfig{
		IgnoredPatterns:   cfg.IgnoredPatterns,
		AllowedExtensions: cfg.AllowedExtensions,
	})
	vaultService = vault.New(vaultRoot, filter, cfg.FollowSymlinks)
	catalogService = catalog.New(vaultService)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "mediavault-mcp",
		Version: version,
	}, nil)

	registerTools(server)

	// Stdout carries the protocol; nothing else may write to it.
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}
