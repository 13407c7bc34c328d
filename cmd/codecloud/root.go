package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codecloud/internal/config"
	"codecloud/internal/errors"
	"codecloud/internal/scan"
	"codecloud/internal/slogutil"
	"codecloud/internal/version"
)

var (
	hostFlag     string
	portFlag     int
	modeFlag     string
	repoFlag     string
	assetsFlag   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "codecloud",
	Short: "Serve a repository word/code/structure cloud UI",
	Long: `codecloud scans a source tree and produces frequency-ranked term clouds
in three modes: raw words from any text file, decomposed code identifiers,
and top-level symbol definitions found via line-pattern heuristics.

By default it starts an HTTP server exposing the clouds as JSON for the
bundled front-end visualizer. With --mode, it prints a single analysis to
stdout and exits without starting the server.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.SetVersionTemplate("codecloud version {{.Version}}\n")
	rootCmd.Flags().StringVar(&hostFlag, "host", "", "Host to bind (default: 0.0.0.0)")
	rootCmd.Flags().IntVar(&portFlag, "port", 0, "Port to bind (default: 8000)")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "",
		"Optional: print a single analysis (words, code, or symbols) to stdout instead of starting the server")
	rootCmd.Flags().StringVar(&repoFlag, "repo", ".", "Repository root to scan")
	rootCmd.Flags().StringVar(&assetsFlag, "assets", "", "Static assets directory (default: <repo>/public)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := validateRoot(repoFlag); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(repoFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// CLI flags take precedence over config file and env.
	if hostFlag != "" {
		cfg.Server.Host = hostFlag
	}
	if portFlag != 0 {
		cfg.Server.Port = portFlag
	}
	if assetsFlag != "" {
		cfg.Server.AssetsDir = assetsFlag
	}
	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slogutil.NewLogger(os.Stderr, slogutil.LevelFromString(cfg.Logging.Level))
	engine := scan.NewEngine(scan.Options{
		Root:             cfg.RepoRoot,
		MaxFileBytes:     cfg.Scan.MaxFileBytes,
		ExcludeDirs:      cfg.Scan.ExcludeDirs,
		ScriptExtensions: cfg.Scan.ScriptExtensions,
		TopTerms:         cfg.Scan.TopTerms,
	}, logger)

	if modeFlag != "" {
		return printCloud(engine, modeFlag)
	}

	assets := cfg.AssetsPath()
	if info, err := os.Stat(assets); err != nil || !info.IsDir() {
		return errors.New(errors.AssetsMissing,
			fmt.Sprintf("static assets directory is missing: %s", assets), nil)
	}

	return serve(cfg, engine, logger)
}

// printCloud runs one scan and pretty-prints the JSON payload to stdout.
// Unlike the HTTP endpoint, an invalid --mode is a CLI error rather than a
// silent fallback.
func printCloud(engine *scan.Engine, modeName string) error {
	mode, err := strictMode(modeName)
	if err != nil {
		return err
	}

	result := engine.BuildCloud(mode)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// validateRoot rejects a scan root that is not an existing directory
// before any config loading or scanning happens.
func validateRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return errors.New(errors.RootInvalid,
			fmt.Sprintf("repository root is not a directory: %s", path), err)
	}
	return nil
}

func strictMode(s string) (scan.Mode, error) {
	mode := scan.Mode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case scan.ModeWords, scan.ModeCode, scan.ModeSymbols:
		return mode, nil
	}
	return "", errors.New(errors.ModeInvalid,
		fmt.Sprintf("invalid mode %q (choose words, code, or symbols)", s), nil)
}
