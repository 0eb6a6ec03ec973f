package bot

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"market-pulse/internal/domain"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

const commandTimeout = 20 * time.Second

// MarketReader is the subset of *service.Market the bot queries.
type MarketReader interface {
	Quotes(ctx context.Context) []domain.Quote
	Series(ctx context.Context, seriesID string) (domain.MacroSeries, error)
	Sentiment(ctx context.Context) domain.Sentiment
	FedOutlook(ctx context.Context) domain.FedOutlook
	FearGreed(ctx context.Context) domain.FearGreed
}

// StartTelegramBot starts long polling in the background. It returns a nil bot
// when no token is configured.
func StartTelegramBot(token string, market MarketReader) (*tele.Bot, error) {
	if token == "" {
		log.Info().Msg("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil, nil
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	registerHandlers(b, market)

	log.Info().Str("username", b.Me.Username).Msg("Telegram bot started")
	go b.Start()
	return b, nil
}

func registerHandlers(b *tele.Bot, market MarketReader) {
	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/help", func(c tele.Context) error {
		return c.Send(helpMessage())
	})

	b.Handle("/quotes", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return c.Send(quotesMessage(market.Quotes(ctx)))
	})

	b.Handle("/macro", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		seriesID := ""
		if args := c.Args(); len(args) > 0 {
			seriesID = strings.ToUpper(args[0])
		}
		series, err := market.Series(ctx, seriesID)
		if err != nil {
			log.Warn().Err(err).Str("series", seriesID).Msg("Telegram /macro failed")
			return c.Send(fmt.Sprintf("Error fetching %s: %v", orDefault(seriesID, domain.DefaultMacroSeries), err))
		}
		return c.Send(macroMessage(series))
	})

	b.Handle("/sentiment", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return c.Send(sentimentMessage(market.Sentiment(ctx)))
	})

	b.Handle("/fed", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return c.Send(fedMessage(market.FedOutlook(ctx)))
	})

	b.Handle("/feargreed", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return c.Send(fearGreedMessage(market.FearGreed(ctx)))
	})
}

func helpMessage() string {
	return strings.Join([]string{
		"/quotes - watchlist prices",
		"/macro [SERIES] - latest FRED reading (default " + domain.DefaultMacroSeries + ")",
		"/sentiment - AAII investor survey",
		"/fed - FedWatch rate probabilities",
		"/feargreed - CNN Fear & Greed index",
		"/ping - check the bot is alive",
		"/help - this message",
	}, "\n")
}

func quotesMessage(quotes []domain.Quote) string {
	var sb strings.Builder
	sb.WriteString("Watchlist\n")
	for _, q := range quotes {
		if q.Price == 0 {
			fmt.Fprintf(&sb, "%s: unavailable\n", q.Name)
			continue
		}
		fmt.Fprintf(&sb, "%s: %.2f (1D %+.2f%%, 5D %+.2f%%, 1M %+.2f%%)\n",
			q.Name, q.Price, q.ChangePercent1D, q.ChangePercent5D, q.ChangePercent20D)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func macroMessage(s domain.MacroSeries) string {
	if len(s.Data) == 0 {
		return fmt.Sprintf("%s: no observations", s.Label)
	}
	last := s.Data[len(s.Data)-1]
	return fmt.Sprintf("%s (%s)\n%s: %s%s\n%d observations", s.Label, s.SeriesID, last.Date, formatValue(last.Value), s.Unit, len(s.Data))
}

func sentimentMessage(s domain.Sentiment) string {
	return fmt.Sprintf(
		"AAII Sentiment (%s)\nBullish: %d%%\nNeutral: %d%%\nBearish: %d%%\nBull-Bear spread: %+d",
		s.UpdatedNote, s.Bullish, s.Neutral, s.Bearish, s.Spread,
	)
}

func fedMessage(o domain.FedOutlook) string {
	if len(o.Meetings) == 0 {
		return "No upcoming FOMC meetings"
	}
	var sb strings.Builder
	sb.WriteString("FedWatch\n")
	for _, m := range o.Meetings {
		fmt.Fprintf(&sb, "%s: cut %d%% / hold %d%% / hike %d%%\n", m.Date, m.Cut25, m.Hold, m.Hike25)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func fearGreedMessage(fg domain.FearGreed) string {
	return fmt.Sprintf("Fear & Greed: %d (%s, %s)", fg.Score, fg.Rating, domain.GaugeBand(fg.Score))
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
