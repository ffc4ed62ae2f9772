// Root command for the primekit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/primekit/internal/paths"
	"github.com/mesh-intelligence/primekit/pkg/primekit"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagNoStore   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:   "primekit",
	Short: "Primekit computes prime sieves, nth-prime estimates and factorizations",
	Long: `Primekit is a prime-number toolkit. It enumerates primes with a sieve of
Eratosthenes, estimates the value of the nth prime without enumeration, and
factors integers by wheel-assisted trial division. Factorizations and run
history are kept in a local SQLite store.`,
	Version: primekit.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.primekit-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "skip the result store (no cache, no run history)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(sieveCmd)
	rootCmd.AddCommand(nthCmd)
	rootCmd.AddCommand(factorCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > PRIMEKIT_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > PRIMEKIT_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
