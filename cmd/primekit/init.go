// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/primekit/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the primekit config and result store",
	Long: `Init writes a default config.yaml to the configuration directory (if one
does not exist) and creates the result store database in the data directory.
Running init is optional: every command initializes what it needs on demand.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml were created by PersistentPreRunE.
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	s := store.New()
	if err := s.Attach(store.Config{Backend: defaultBackend, DataDir: dataDir}); err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	if err := s.Detach(); err != nil {
		return fmt.Errorf("detach store: %w", err)
	}

	fmt.Printf("config: %s\nstore:  %s\n", configDir, dataDir)
	return nil
}
