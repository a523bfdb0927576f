package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/id3mend"
	"github.com/bft-labs/id3mend/internal/cliconfig"
)

const helpDescription = `
Find mojibake in MP3 ID3 tags caused by a vendor double-encoding bug and
report the corrected text. Scans are advisory: nothing is written back.

Highlights:
  - Detects fields whose UTF-8 bytes were erroneously encoded twice and
    recovers the intended text.
  - Walks files and directories; filters by extension; skips files without
    an ID3 header.
  - Optional watch mode keeps scanning directories as new files arrive.
  - Configure via flags, ID3MEND_* environment variables, or a TOML file.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  id3mend ~/music
  id3mend --log-level debug track.mp3
  id3mend --watch --summary=false /srv/incoming
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "id3mend [flags] PATH...",
		Short:   "Report mojibake corrections for MP3 ID3 text frames",
		Long:    longHelp,
		Example: exampleUsage,
		Args:    cobra.MinimumNArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.id3mend/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// Environment variables (ID3MEND_*) override file config but
			// are overridden by flags (checked via changed map).
			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.Logger(cfg.LogLevel)
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			// Argument errors past this point are run results, not usage
			// mistakes.
			cmd.SilenceUsage = true

			return id3mend.Run(ctx, id3mend.Config{
				Fields:     cfg.Fields,
				Extensions: cfg.Extensions,
				Watch:      cfg.Watch,
				Summary:    cfg.Summary,
				Log:        log,
			}, args...)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.id3mend/config.toml)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringSliceVar(&cfg.Fields, "fields", cfg.Fields, "ID3 frame identifiers to inspect")
	root.Flags().StringSliceVar(&cfg.Extensions, "extensions", cfg.Extensions, "file extensions to scan")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep watching directory arguments for new files")
	root.Flags().BoolVar(&cfg.Summary, "summary", cfg.Summary, "print the per-run summary table")

	if err := root.Execute(); err != nil {
		log := cliconfig.Logger("info")
		log.Error().Err(err).Msg("id3mend")
		os.Exit(1)
	}
}
