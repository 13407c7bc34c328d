package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codecloud/internal/config"
	"codecloud/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize codecloud configuration",
	Long:  "Creates a .codecloud/ directory with the default configuration under the repository root",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := validateRoot(repoFlag); err != nil {
		return err
	}

	configPath := filepath.Join(repoFlag, ".codecloud", "config.json")
	if _, err := os.Stat(configPath); err == nil && !initForce {
		// Idempotent: already initialized is success.
		fmt.Printf("codecloud already initialized at %s\n", configPath)
		fmt.Println("Run 'codecloud init --force' to overwrite.")
		return nil
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(repoFlag); err != nil {
		return errors.New(errors.InternalError, "failed to write configuration", err)
	}

	fmt.Printf("Configuration written to %s\n", configPath)
	return nil
}
