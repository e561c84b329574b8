// Command latin-analyzer runs the Latin morphological analysis service.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/latin-analyzer/internal/analyzer"
	"github.com/cours-de-latin/latin-analyzer/internal/api"
	"github.com/cours-de-latin/latin-analyzer/internal/config"
)

var (
	cfgPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "latin-analyzer",
	Short: "Latin morphological analysis as a JSON REST API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze Latin text and print the word records as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd, analyzeCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := analyzer.New(cfg.Data.Dir, logger)
	server := api.NewServer(cfg.Server.Addr, svc, cfg.Server.CORSAllowedOrigins, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Start(ctx) })
	if cfg.Data.Watch {
		g.Go(func() error { return svc.Watch(ctx) })
	}
	return g.Wait()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	svc := analyzer.New(cfg.Data.Dir, logger)

	words, err := svc.Analyze(cmd.Context(), strings.Join(args, " "),
		analyzer.Options{IncludeMorphology: true})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
