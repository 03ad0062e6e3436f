package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/galactic-tictactoe/internal/config"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/repository"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/service"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/transport/tui"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/usecase"
)

const journalDrainTimeout = 2 * time.Second

// RunApp - runs the game until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := gameSeed(conf.Game.Seed, time.Now)
	log.Info("Starting game", "seed", seed, "match_point", conf.Game.MatchPoint)

	botService := service.NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // game tie-break, not security

	var opts []usecase.Option
	if conf.Journal.Enabled {
		journal, closeJournal, err := newRoundJournal(ctx, logger, conf)
		if err != nil {
			return err
		}
		defer closeJournal()

		opts = append(opts, usecase.WithRoundJournal(journal))
		log.Info("Round journal enabled", "addr", conf.Journal.Redis.GetRedisAddr())
	}

	gameManager := usecase.NewGameManager(logger, botService, conf.Game.MatchPoint, opts...)

	if err := tui.Run(ctx, logger, gameManager, tui.Options{
		ThinkDelay:    conf.UI.ThinkDelay,
		ClickDebounce: conf.UI.ClickDebounce,
		NoMouse:       conf.UI.NoMouse,
		NoColor:       conf.UI.NoColor,
	}); err != nil {
		return fmt.Errorf("game ui error: %w", err)
	}

	log.Info("Game closed", "quit_requested", gameManager.Quitting())

	return nil
}

// gameSeed returns the configured seed, or one taken from the clock when it is 0.
func gameSeed(seed int64, now func() time.Time) int64 {
	if seed != 0 {
		return seed
	}

	return now().UnixNano()
}

func journalOptions(conf *config.Config) repository.RoundJournalOptions {
	return repository.RoundJournalOptions{
		ListKey:    conf.Journal.ListKey,
		Channel:    conf.Journal.Channel,
		MaxEntries: conf.Journal.MaxEntries,
		TTL:        conf.Journal.TTL,
	}
}

// newRoundJournal connects to redis and starts the background writer.
// The returned func drains pending rounds and closes the client.
func newRoundJournal(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.RoundJournal, func(), error) {
	log := logger.With("component", "app")

	redisClient, err := storage.NewRedisClient(ctx, conf.Journal.Redis.GetRedisAddr(), conf.Journal.Timeout)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to round journal: %w", err)
	}

	roundRepo := repository.NewRoundRepository(redisClient, journalOptions(conf))
	journal := usecase.NewRoundJournal(ctx, logger, roundRepo, usecase.RoundJournalOptions{
		Timeout:   conf.Journal.Timeout,
		QueueSize: conf.Journal.QueueSize,
	})

	closeJournal := func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), journalDrainTimeout)
		defer cancel()

		if err := journal.Close(drainCtx); err != nil {
			log.Warn("round journal closed with pending rounds", "error", err)
		}

		if err := redisClient.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}

	return journal, closeJournal, nil
}
