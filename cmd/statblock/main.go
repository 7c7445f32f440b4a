// Package main is the entry point for the stat block importer CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/config"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

var (
	envFiles      []string
	logLevel      string
	redisAddr     string
	redisDB       int
	compendiumURL string
	concurrency   int
	output        string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "statblock",
	Short: "Import D&D 5e stat blocks",
	Long: `statblock parses creature stat blocks written in Homebrewery markdown and
stores them as a virtual tabletop actor with one item per trait, action and spell.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
		fields := errors.FieldErrors(err)
		for _, name := range sortedKeys(fields) {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", name, strings.Join(fields[name], ", "))
		}
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address")
	flags.IntVar(&redisDB, "redis-db", 0, "redis database number")
	flags.StringVar(&compendiumURL, "dnd5e-url", "", "D&D 5e API base URL")
	flags.IntVar(&concurrency, "concurrency", 0, "parallel spell lookups")
	flags.StringVarP(&output, "output", "o", formatJSON, "output format: json or yaml")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(showCmd)
}

// setup loads configuration, applies flag overrides and installs the logger
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("redis-db") {
		loaded.RedisDB = redisDB
	}
	if flags.Changed("dnd5e-url") {
		loaded.CompendiumURL = compendiumURL
	}
	if flags.Changed("concurrency") {
		loaded.LookupConcurrency = concurrency
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(loaded.LogLevel)
	if err != nil {
		return errors.InvalidArgumentf("unknown log level %q", loaded.LogLevel)
	}
	slog.SetDefault(slog.New(log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "statblock",
	})))

	cfg = loaded
	return nil
}
