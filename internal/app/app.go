package app

import (
	"context"
	"fmt"
	"os"
	"time"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"intake/internal/application/services"
	"intake/internal/config"
	"intake/internal/infrastructure/event_publisher"
	"intake/internal/interfaces/events"
	"intake/internal/interfaces/http"
	"intake/internal/repository"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger zerolog.Logger
	srv    *http.Server
	db     *sqlx.DB
}

// NewApp wires the service. redisClient may be nil, in which case booking
// notifications are dropped.
func NewApp(
	cfg config.App,
	watermillLogger watermill.LoggerAdapter,
	db *sqlx.DB,
	redisClient *redis.Client,
) (*App, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var eventBus services.EventBus = events.NopEventBus{}
	if redisClient != nil {
		publisher, err := event_publisher.NewRedisPublisher(watermillLogger, redisClient)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis publisher: %w", err)
		}

		eventBus, err = events.NewEventBus(publisher, watermillLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create event bus: %w", err)
		}
	} else {
		logger.Info().Msg("REDIS_ADDR not set, booking notifications disabled")
	}

	bookingsRepo := repository.NewBookingsRepo(db)
	bookingsService := services.NewBookingService(bookingsRepo, eventBus)

	e := commonHTTP.NewEcho()
	srv := http.NewServer(
		e,
		cfg.HTTPAddr,
		bookingsService,
	)

	return &App{
		logger: logger,
		srv:    srv,
		db:     db,
	}, nil
}

// Run blocks until ctx is cancelled or the server fails. The schema is
// created before the server accepts connections.
func (a *App) Run(ctx context.Context) error {
	err := repository.InitializeDBSchema(ctx, a.db)
	if err != nil {
		return err
	}
	a.logger.Info().Msg("database schema ready")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		// Shut down
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := a.srv.Stop(shutdownCtx)
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		return err
	})

	// Will block until all goroutines finish
	return g.Wait()
}
