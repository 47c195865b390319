package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	authapp "github.com/Lexv0lk/token-store/internal/auth/application"
	authdomain "github.com/Lexv0lk/token-store/internal/auth/domain"
	authpostgres "github.com/Lexv0lk/token-store/internal/auth/infrastructure/postgres"
	"github.com/Lexv0lk/token-store/internal/pkg/database"
	"github.com/Lexv0lk/token-store/internal/pkg/jwt"
	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/pkg/ratelimit"
	"github.com/Lexv0lk/token-store/internal/token/application"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	httpwrap "github.com/Lexv0lk/token-store/internal/token/infrastructure/http"
	"github.com/Lexv0lk/token-store/internal/token/infrastructure/metrics"
	"github.com/Lexv0lk/token-store/internal/token/infrastructure/postgres"
	"github.com/Lexv0lk/token-store/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
)

type LedgerApp struct {
	cfg    LedgerConfig
	logger logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLedgerApp(cfg LedgerConfig, logger logging.Logger) *LedgerApp {
	return &LedgerApp{
		cfg:    cfg,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Run restores the ledger from the database and serves HTTP on lis until ctx is cancelled
// or Shutdown is called. It returns after the journal has written every accepted event.
func (a *LedgerApp) Run(ctx context.Context, lis net.Listener) error {
	defer close(a.done)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	dbpool, err := pgxpool.New(runCtx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbpool.Close()

	if err := database.MigrateDatabase(runCtx, dbURL, migrations.FS, logger); err != nil {
		return err
	}

	txManager := database.NewDelegateTxManager(dbpool, logger)
	journal := postgres.NewJournal(txManager, a.cfg.JournalBuffer, logger)
	sink := metrics.NewSink()

	token, err := domain.NewToken(
		a.cfg.Administrator,
		domain.WithEventSink(domain.MultiSink{journal, sink}),
		domain.WithRedeemPolicy(a.cfg.RedeemPolicy),
	)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	snapshot, err := postgres.NewStateLoader(dbpool).LoadState(runCtx)
	if err != nil {
		return fmt.Errorf("failed to load ledger state: %w", err)
	}
	if err := token.Restore(snapshot); err != nil {
		return fmt.Errorf("failed to restore ledger state: %w", err)
	}

	sink.Observe(snapshot.Supply)
	if err := sink.WatchCatalog(func() int { return len(token.ListItems()) }); err != nil {
		return fmt.Errorf("failed to register catalog metrics: %w", err)
	}

	logger.Info("ledger restored",
		"accounts", len(snapshot.Balances),
		"items", len(snapshot.Items),
		"total_supply", domain.FormatUnits(snapshot.Supply.Total()),
	)

	ledgerCase := application.NewLedgerCase(token, logger)
	catalogCase := application.NewCatalogCase(token, logger)
	redeemCase := application.NewRedeemCase(token, logger)
	accountInfoCase := application.NewAccountInfoCase(token, postgres.NewHistoryRepository(dbpool), application.DefaultHistoryLimit, logger)

	authenticator := authapp.NewAuthenticator(
		authpostgres.NewUsersRepository(dbpool),
		authdomain.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(),
		a.cfg.JwtSecret,
		string(a.cfg.Administrator),
	)
	if err := authenticator.ProvisionUser(runCtx, string(a.cfg.Administrator), a.cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to provision administrator credentials: %w", err)
	}

	router := httpwrap.NewRouter(
		httpwrap.Handlers{
			Auth:    httpwrap.NewAuthHandler(authenticator, logger),
			Ledger:  httpwrap.NewLedgerHandler(ledgerCase, accountInfoCase, logger),
			Catalog: httpwrap.NewCatalogHandler(catalogCase, logger),
			Redeem:  httpwrap.NewRedeemHandler(redeemCase, logger),
		},
		httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), a.cfg.JwtSecret),
		httpwrap.NewRateLimitMiddleware(ratelimit.NewKeyLimiter(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst, 0)),
		sink.Registry(),
	)

	server := &http.Server{
		Handler: router,
	}

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		return journal.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		journal.Close()
		if err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		return nil
	})

	if err := a.seedCatalog(gctx, catalogCase); err != nil {
		cancel()
		return errors.Join(err, g.Wait())
	}

	g.Go(func() error {
		logger.Info("starting http server", "address", lis.Addr().String())

		if err := server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve http: %w", err)
		}

		return nil
	})

	err = g.Wait()
	logger.Info("ledger stopped", "events_written", journal.Written(), "events_dropped", journal.Dropped())

	return err
}

// Shutdown stops a running app and waits for Run to return.
func (a *LedgerApp) Shutdown() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-a.done
}

func (a *LedgerApp) seedCatalog(ctx context.Context, catalog domain.CatalogService) error {
	if a.cfg.CatalogSeedPath == "" {
		return nil
	}

	items, err := application.LoadCatalogSeed(a.cfg.CatalogSeedPath)
	if err != nil {
		return err
	}

	_, err = application.NewCatalogSeeder(catalog, a.cfg.Administrator, a.logger).Seed(ctx, items)
	return err
}
