package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"randkey/internal/config"
	"randkey/internal/domain"
	"randkey/internal/randkey"
	"randkey/internal/sampler"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var defaultCounts = []string{"10", "2", "3"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	level, err := cfg.Level()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(cfg, logger)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("randkey failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	var (
		seed  uint64
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "randkey [letters symbols digits [unit]]",
		Short: "Generate a random key with exact letter, symbol and digit counts",
		Long: "Generate a random key with exact letter, symbol and digit counts.\n" +
			"Counts may be arbitrarily large decimal integers. Without arguments\n" +
			"the counts are 10 2 3.",
		Args:          countArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := defaultCounts
			unit := cfg.Unit
			if len(args) >= 3 {
				counts = args[:3]
			}
			if len(args) == 4 {
				unit = args[3]
			}

			k, err := generate(cmd.Context(), counts, unit, seed, cfg.Workers, logger)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
				return fmt.Errorf("write key: %w", err)
			}
			if stats {
				return printStats(cmd.ErrOrStderr(), k)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", cfg.Seed, "seed for reproducible output (0 picks a random seed)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print per-class counts to stderr")

	return cmd
}

func countArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0, 3, 4:
		return nil
	default:
		return fmt.Errorf("expected 0, 3 or 4 arguments, got %d", len(args))
	}
}

func generate(ctx context.Context, counts []string, unit string, seed uint64, workers int, logger *slog.Logger) (*randkey.RandKey, error) {
	opts := []randkey.Option{
		randkey.WithWorkers(workers),
		randkey.WithLogger(logger),
	}
	if seed != 0 {
		opts = append(opts, randkey.WithSampler(sampler.NewSeeded(seed)))
	}

	k, err := randkey.New(counts[0], counts[1], counts[2], opts...)
	if err != nil {
		return nil, err
	}
	if err := k.SetUnit(unit); err != nil {
		return nil, err
	}
	if err := k.Generate(ctx); err != nil {
		return nil, err
	}
	return k, nil
}

// printStats writes the class counts with digit grouping. Counts fit in an
// int because the key they describe is in memory.
func printStats(w io.Writer, k *randkey.RandKey) error {
	p := message.NewPrinter(language.English)
	for _, c := range domain.Classes {
		text, err := k.Count(c)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%s count: %w", c, err)
		}
		if _, err := p.Fprintf(w, "%-8s %d\n", c.String()+":", n); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	if _, err := p.Fprintf(w, "%-8s %d\n", "total:", k.Len()); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}
