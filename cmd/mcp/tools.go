package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"market-pulse/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MarketData is the read API exposed as tools. *service.Market implements it.
type MarketData interface {
	Quotes(ctx context.Context) []domain.Quote
	Series(ctx context.Context, seriesID string) (domain.MacroSeries, error)
	Sentiment(ctx context.Context) domain.Sentiment
	FedOutlook(ctx context.Context) domain.FedOutlook
	FearGreed(ctx context.Context) domain.FearGreed
	Dashboard(ctx context.Context) domain.Dashboard
}

type noInput struct{}

type seriesInput struct {
	SeriesID string `json:"series_id,omitempty" jsonschema:"FRED series id, e.g. BAMLH0A0HYM2 or T10Y2Y. Defaults to the high-yield credit spread."`
}

func newServer(market MarketData, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "market-pulse", Version: version}, nil)
	registerTools(server, market)
	return server
}

func registerTools(server *mcp.Server, market MarketData) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_watchlist",
		Description: "Latest price and 1D/5D/1M percent changes for the index, rates, commodity and crypto watchlist.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(market.Quotes(ctx))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_macro_series",
		Description: "Observations for a FRED macro series, oldest first. Requires FRED_API_KEY on the server.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in seriesInput) (*mcp.CallToolResult, any, error) {
		series, err := market.Series(ctx, strings.ToUpper(strings.TrimSpace(in.SeriesID)))
		if err != nil {
			return errorResult(fmt.Sprintf("FRED fetch failed: %v", err)), nil, nil
		}
		return jsonResult(series)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_sentiment",
		Description: "Weekly AAII investor sentiment survey: bullish, neutral and bearish percentages plus the bull-bear spread.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(market.Sentiment(ctx))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_fed_outlook",
		Description: "CME FedWatch probabilities of a 25bp cut, hold or 25bp hike for the next FOMC meetings.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(market.FedOutlook(ctx))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_fear_greed",
		Description: "CNN Fear & Greed index score (0-100) and rating.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(market.FearGreed(ctx))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Every dashboard section in one call. Sections that failed upstream carry fallback values.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(market.Dashboard(ctx))
	})
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
