package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/fiveword/internal/cliconfig"
	"github.com/bft-labs/fiveword/pkg/fiveword"
)

const helpDescription = `
Extract the five-letter words from a Turkish word list.

Each line is trimmed and kept only when it is exactly five letters. Kept
words are uppercased with the Turkish i rules preserved (ı -> I, i -> İ)
and written one per line, in source order. The destination is overwritten.

Paths come from flags, FIVEWORD_INPUT / FIVEWORD_OUTPUT, or a config file
(TOML, or YAML when the name ends in .yaml/.yml), in that order of priority.
`

var exampleUsage = strings.TrimSpace(`
  fiveword
  fiveword --input TDK_Sozluk_Kelime_Listesi.txt --output five.txt
  fiveword --config $HOME/.fiveword/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "fiveword",
		Short:         "Extract five-letter words from a Turkish word list",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// File < env < flags
			if err := cliconfig.Resolve(&cfg, cfgPath, changed); err != nil {
				return err
			}
			log.Info().Interface("config", cfg).Msg("configuration")

			s, err := fiveword.New(cfg, fiveword.WithLogger(log))
			if err != nil {
				return fmt.Errorf("create sifter: %w", err)
			}

			stats, err := s.Run()
			if err != nil {
				return err
			}

			log.Info().
				Int("lines", stats.Lines).
				Int("accepted", stats.Accepted).
				Str("output", cfg.Output).
				Msg("done")
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.fiveword/config.toml)")
	root.Flags().StringVarP(&cfg.Input, "input", "i", cfg.Input, "word list to read, one word per line")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "file to write five-letter words to (overwritten)")

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("fiveword")
		os.Exit(1)
	}
}
