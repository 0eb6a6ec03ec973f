package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"market-pulse/internal/config"
	"market-pulse/internal/di"
	"market-pulse/internal/domain"
	"market-pulse/pkg/logger"
	"market-pulse/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

// MarketData is the read API the commands print. *service.Market implements it.
type MarketData interface {
	Quotes(ctx context.Context) []domain.Quote
	Series(ctx context.Context, seriesID string) (domain.MacroSeries, error)
	Sentiment(ctx context.Context) domain.Sentiment
	FedOutlook(ctx context.Context) domain.FedOutlook
	FearGreed(ctx context.Context) domain.FearGreed
	Dashboard(ctx context.Context) domain.Dashboard
}

// openMarketFunc builds the market graph. The returned func releases it.
var openMarketFunc = func(ctx context.Context) (MarketData, func(), error) {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.SetGlobalLogger(logger.New(logger.Config{Level: "warn", Pretty: true, Output: os.Stderr}))

	tp, tracer, err := tracing.InitTracer(ctx, tracing.Options{ServiceName: tracing.DefaultServiceName + "-cli"})
	if err != nil {
		return nil, nil, fmt.Errorf("init tracer: %w", err)
	}
	container := di.Wire(ctx, cfg, tracer)
	return container.Market, func() {
		container.Close()
		_ = tp.Shutdown(context.Background())
	}, nil
}

var flagJSON bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pulse",
		Short:        "Print market dashboard data in the terminal",
		Long:         "pulse fetches the same watchlist, macro, sentiment, FedWatch and Fear & Greed data the dashboard API serves.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of a table")

	root.AddCommand(
		marketCmd("watchlist", "Watchlist quotes", func(ctx context.Context, m MarketData, out io.Writer, _ []string) error {
			return render(out, m.Quotes(ctx), printQuotes)
		}),
		macroCmd(),
		marketCmd("sentiment", "AAII investor sentiment", func(ctx context.Context, m MarketData, out io.Writer, _ []string) error {
			return render(out, m.Sentiment(ctx), printSentiment)
		}),
		marketCmd("fed", "CME FedWatch rate probabilities", func(ctx context.Context, m MarketData, out io.Writer, _ []string) error {
			return render(out, m.FedOutlook(ctx), printFed)
		}),
		marketCmd("feargreed", "CNN Fear & Greed index", func(ctx context.Context, m MarketData, out io.Writer, _ []string) error {
			return render(out, m.FearGreed(ctx), printFearGreed)
		}),
		marketCmd("dashboard", "Every section as JSON", func(ctx context.Context, m MarketData, out io.Writer, _ []string) error {
			return writeJSON(out, m.Dashboard(ctx))
		}),
		versionCmd(),
	)
	return root
}

type runFunc func(ctx context.Context, m MarketData, out io.Writer, args []string) error

func marketCmd(use, short string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE:  withMarket(run),
	}
}

func macroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "macro [SERIES_ID]",
		Short: "FRED macro series (default " + domain.DefaultMacroSeries + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: withMarket(func(ctx context.Context, m MarketData, out io.Writer, args []string) error {
			id := ""
			if len(args) == 1 {
				id = strings.ToUpper(args[0])
			}
			series, err := m.Series(ctx, id)
			if err != nil {
				return fmt.Errorf("fetch macro series: %w", err)
			}
			return render(out, series, printSeries)
		}),
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pulse %s\n", version)
		},
	}
}

func withMarket(run runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		market, closeFn, err := openMarketFunc(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		return run(ctx, market, cmd.OutOrStdout(), args)
	}
}

func render[T any](out io.Writer, v T, table func(io.Writer, T)) error {
	if flagJSON {
		return writeJSON(out, v)
	}
	table(out, v)
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printQuotes(out io.Writer, quotes []domain.Quote) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSYMBOL\tPRICE\t1D\t5D\t1M")
	for _, q := range quotes {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%+.2f%%\t%+.2f%%\t%+.2f%%\n",
			q.Name, q.Symbol, q.Price, q.ChangePercent1D, q.ChangePercent5D, q.ChangePercent20D)
	}
	w.Flush()
}

func printSeries(out io.Writer, s domain.MacroSeries) {
	fmt.Fprintf(out, "%s (%s)\n", s.Label, s.SeriesID)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	start := max(len(s.Data)-10, 0)
	for _, o := range s.Data[start:] {
		fmt.Fprintf(w, "%s\t%.2f%s\n", o.Date, o.Value, s.Unit)
	}
	w.Flush()
}

func printSentiment(out io.Writer, s domain.Sentiment) {
	fmt.Fprintf(out, "Bullish %d%%  Neutral %d%%  Bearish %d%%  Spread %+d  (%s)\n",
		s.Bullish, s.Neutral, s.Bearish, s.Spread, s.UpdatedNote)
}

func printFed(out io.Writer, o domain.FedOutlook) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MEETING\tCUT\tHOLD\tHIKE")
	for _, m := range o.Meetings {
		fmt.Fprintf(w, "%s\t%d%%\t%d%%\t%d%%\n", m.Date, m.Cut25, m.Hold, m.Hike25)
	}
	w.Flush()
}

func printFearGreed(out io.Writer, fg domain.FearGreed) {
	fmt.Fprintf(out, "%d %s (%s)\n", fg.Score, fg.Rating, domain.GaugeBand(fg.Score))
}
