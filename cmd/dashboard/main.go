package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/quantfeed/tradeboard/internal/config"
	"github.com/quantfeed/tradeboard/internal/fetch"
	"github.com/quantfeed/tradeboard/internal/model"
	"github.com/quantfeed/tradeboard/internal/nav"
	"github.com/quantfeed/tradeboard/internal/poller"
	"github.com/quantfeed/tradeboard/internal/version"
	"github.com/quantfeed/tradeboard/internal/view"
)

func main() {
	configPath := flag.String("config", "configs/dashboard.yaml", "path to config file")
	flag.Parse()

	// Logs go to stderr so stdout stays clean for the rendered cards.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting dashboard",
		"version", version.Version,
		"config", *configPath,
	)

	cfg, err := config.LoadDashboard(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	base, quote, err := splitPair(cfg.Pair)
	if err != nil {
		logger.Error("invalid pair", "pair", cfg.Pair, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := fetch.NewClient(cfg.BaseURL, nil)

	shell := nav.NewShell(logger)
	shell.Register("/", newDashboardView(client, cfg, base, quote, logger))
	shell.Register("/screener", &screenerView{})

	if err := shell.Navigate(ctx, "/"); err != nil {
		logger.Error("failed to open dashboard", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("shutting down...")
	shell.Close()
	logger.Info("dashboard stopped")
}

func splitPair(pair string) (base, quote string, err error) {
	parts := strings.Split(pair, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("pair must look like BTC/USDT, got %q", pair)
	}
	return parts[0], parts[1], nil
}

// dashboardView runs the price and leaderboard pollers and redraws the
// terminal whenever either publishes a new state.
type dashboardView struct {
	client *fetch.Client
	cfg    *config.DashboardConfig
	base   string
	quote  string
	logger *slog.Logger

	mu      sync.Mutex
	price   poller.State[model.PricePoint]
	leaders poller.State[model.LeaderboardResponse]

	pricePoller   *poller.Poller[model.PricePoint]
	leadersPoller *poller.Poller[model.LeaderboardResponse]
}

func newDashboardView(client *fetch.Client, cfg *config.DashboardConfig, base, quote string, logger *slog.Logger) *dashboardView {
	return &dashboardView{
		client: client,
		cfg:    cfg,
		base:   base,
		quote:  quote,
		logger: logger,
	}
}

func (v *dashboardView) Activate(ctx context.Context) error {
	pricePath := fmt.Sprintf("/api/price/%s/%s", v.base, v.quote)

	v.pricePoller = poller.New(
		poller.Config{Interval: v.cfg.PriceInterval},
		func(ctx context.Context) (model.PricePoint, error) {
			return fetch.GetJSON[model.PricePoint](ctx, v.client, pricePath)
		},
		func(s poller.State[model.PricePoint]) {
			v.mu.Lock()
			v.price = s
			v.mu.Unlock()
			v.redraw()
		},
		v.logger,
	)

	v.leadersPoller = poller.New(
		poller.Config{Interval: v.cfg.LeaderboardInterval},
		func(ctx context.Context) (model.LeaderboardResponse, error) {
			return fetch.GetJSON[model.LeaderboardResponse](ctx, v.client, "/api/leaderboard")
		},
		func(s poller.State[model.LeaderboardResponse]) {
			v.mu.Lock()
			v.leaders = s
			v.mu.Unlock()
			v.redraw()
		},
		v.logger,
	)

	if err := v.pricePoller.Start(ctx); err != nil {
		return err
	}
	if err := v.leadersPoller.Start(ctx); err != nil {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		v.pricePoller.Stop(stopCtx)
		return err
	}
	return nil
}

func (v *dashboardView) Deactivate() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if v.pricePoller != nil {
		v.pricePoller.Stop(ctx)
	}
	if v.leadersPoller != nil {
		v.leadersPoller.Stop(ctx)
	}
}

func (v *dashboardView) redraw() {
	v.mu.Lock()
	price, leaders := v.price, v.leaders
	v.mu.Unlock()

	var b strings.Builder
	b.WriteString("\033[2J\033[H") // clear screen, cursor home
	b.WriteString("TRADEBOARD  (")
	b.WriteString(v.cfg.BaseURL)
	b.WriteString(")\n\n")
	b.WriteString(view.TickerCard(price))
	b.WriteString("\n")
	b.WriteString(view.LeaderboardCard(leaders))
	fmt.Fprint(os.Stdout, b.String())
}

// screenerView is a stub route for the market screener screen.
type screenerView struct{}

func (*screenerView) Activate(_ context.Context) error {
	fmt.Fprint(os.Stdout, "\033[2J\033[HScreener: coming soon\n")
	return nil
}

func (*screenerView) Deactivate() {}
