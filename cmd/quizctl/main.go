// Command quizctl creates a game through the API and waits until its
// questions are ready to play.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dev-quizz/internal/client"
	"dev-quizz/internal/config"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/poller"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("quizctl", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file")
	fs.String("api-url", "http://localhost:8090", "base URL of the API server")
	fs.String("frontend-url", "http://localhost:3000", "base URL used to print the play link")
	fs.String("token", "", "access token (defaults to $QUIZCTL_TOKEN)")
	fs.String("topic", "", "quiz topic")
	fs.Int("amount", 5, "number of questions (1-10)")
	fs.String("type", "mcq", "game type: mcq or open_ended")
	fs.Duration("request-timeout", 90*time.Second, "timeout for the create request")
	fs.Duration("timeout", poller.DefaultTimeout, "how long to wait for the questions")
	fs.Duration("interval", poller.DefaultInterval, "how often to check the game")
	fs.String("log-level", "warn", "log level")
	return fs
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"poller.timeout":      "timeout",
		"poller.interval":     "interval",
		"server.frontend_url": "frontend-url",
		"logger.level":        "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	return v.BindPFlags(fs)
}

func run(args []string) error {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("quizctl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := bindFlags(v, fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	cfg := config.FromViper(v)

	if err := logger.Initialize(config.LoggerConfig{Level: cfg.Logger.Level, Env: "development"}); err != nil {
		return err
	}
	defer logger.Sync()

	req := dto.CreateGameRequest{
		Topic:  v.GetString("topic"),
		Amount: v.GetInt("amount"),
		Type:   v.GetString("type"),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api, err := client.NewGameClient(v.GetString("api-url"), v.GetString("token"), v.GetDuration("request-timeout"))
	if err != nil {
		return err
	}

	gameID, err := api.CreateGame(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	fmt.Printf("Created game %s, waiting for %d questions...\n", gameID, req.Amount)

	p := &poller.Poller{
		Fetcher:  api,
		Timeout:  cfg.Poller.Timeout,
		Interval: cfg.Poller.Interval,
		OnStateChange: func(s poller.State) {
			logger.Get().Info("Game status", zap.String("gameID", gameID), zap.Stringer("state", s))
		},
	}
	target := poller.Target{GameID: gameID, GameType: req.Type, Amount: req.Amount}
	res, err := p.Run(ctx, target)
	if err != nil {
		return err
	}

	playURL := strings.TrimRight(cfg.Server.FrontendURL, "/") + target.PlayPath()
	if res.Navigate {
		fmt.Printf("Game ready: %s\n", playURL)
		return nil
	}
	fmt.Printf("Questions are still being generated. Start the game manually at %s\n", playURL)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "quizctl:", err)
		os.Exit(1)
	}
}
