package routes

import (
	_ "cleanlyquote/docs" // generated by swag init
	"cleanlyquote/internal/adapter/http/handlers"
	"cleanlyquote/internal/adapter/http/middleware"
	"cleanlyquote/internal/adapter/persistence/redisstore"
	"cleanlyquote/internal/config"
	"cleanlyquote/internal/infrastructure/auth"
	"cleanlyquote/internal/infrastructure/database"
	"cleanlyquote/internal/infrastructure/email"
	"cleanlyquote/internal/infrastructure/logger"
	"cleanlyquote/internal/infrastructure/notify"
	"cleanlyquote/internal/infrastructure/payments"
	"cleanlyquote/internal/usecase"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logr, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	if err := serve(cfg, logr); err != nil {
		logr.Fatalw("Failed to startup the application", "error", err)
	}
}

func serve(cfg config.Config, logr *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sentryEnabled := initSentry(cfg, logr)
	if sentryEnabled {
		defer sentry.Flush(2 * time.Second)
	}

	st, err := openStores(ctx, cfg, logr)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logr.Warnw("[http][server] closing store", "error", err)
		}
	}()

	ledger, closeLedger, err := openEventLedger(ctx, cfg, logr)
	if err != nil {
		return err
	}
	defer closeLedger()

	secret := cfg.JWT.Secret
	if secret == "" {
		secret = devSecret()
		logr.Warnw("[http][server] JWT_SECRET not set, using an ephemeral development secret")
	}
	tokens, err := auth.NewJWTIssuer(secret, cfg.JWT.TTL)
	if err != nil {
		return errors.Wrap(err, "jwt issuer")
	}

	mailer, err := email.NewResendMailer(email.Settings{
		APIKey:      cfg.Email.ResendAPIKey,
		From:        cfg.Email.From,
		FrontendURL: cfg.FrontendURL,
	}, logr)
	if err != nil {
		return errors.Wrap(err, "mailer")
	}

	gateway := payments.NewStripeGateway(payments.StripeSettings{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		SkipVerify:    cfg.WebhookSkipVerify(),
	}, logr)
	if cfg.WebhookSkipVerify() {
		logr.Warnw("[http][server] STRIPE_WEBHOOK_SECRET not set, webhook signatures are not verified")
	}

	dispatcher := notify.NewDispatcher(notify.DefaultTaskTimeout, logr)

	entitlements := usecase.NewEntitlementUseCase(st.quotes)
	quoteUC := usecase.NewQuoteUseCase(st.quotes, entitlements, mailer, cfg.ShareURL, logr)
	shareUC := usecase.NewShareLinkUseCase(st.quotes, st.tenants, cfg.ShareURL, logr)
	authUC := usecase.NewAuthUseCase(st.tenants, tokens, entitlements, mailer, dispatcher, logr)
	subscriptionUC := usecase.NewSubscriptionUseCase(st.tenants, entitlements, gateway, usecase.BillingSettings{
		MonthlyPriceID: cfg.Stripe.MonthlyPriceID,
		AnnualPriceID:  cfg.Stripe.AnnualPriceID,
		FrontendURL:    cfg.FrontendURL,
	}, logr)
	syncUC := usecase.NewSubscriptionSyncUseCase(st.tenants, mailer, dispatcher, ledger, logr)

	router := NewRouter(Dependencies{
		Auth:          authUC,
		Quotes:        handlers.NewQuoteHandler(quoteUC, logr),
		Schedule:      handlers.NewScheduleHandler(quoteUC),
		Share:         handlers.NewShareLinkHandler(shareUC, logr),
		Checklists:    handlers.NewChecklistHandler(usecase.NewChecklistUseCase(st.quotes, st.checklists, st.templates)),
		Templates:     handlers.NewChecklistTemplateHandler(usecase.NewChecklistTemplateUseCase(st.templates)),
		Clients:       handlers.NewClientHandler(usecase.NewClientUseCase(st.clients, st.quotes, logr)),
		Team:          handlers.NewTeamHandler(usecase.NewTeamUseCase(st.team, st.quotes, logr)),
		Accounts:      handlers.NewAuthHandler(authUC),
		Subscriptions: handlers.NewSubscriptionHandler(subscriptionUC),
		Webhook:       handlers.NewWebhookHandler(gateway, syncUC, logr),
		Admin:         handlers.NewAdminHandler(usecase.NewAdminUseCase(st.tenants, logr)),
		PublicLimiter: middleware.NewIPRateLimiter(cfg.RateLimit.PublicPerSecond, cfg.RateLimit.PublicBurst),
		Sentry:        sentryEnabled,
		Log:           logr,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Infow("[http][server] listening", "addr", srv.Addr, "store", cfg.Store.Driver, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	logr.Infow("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warnw("[http][server] graceful shutdown", "error", err)
	}
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		logr.Warnw("[http][server] background tasks still running at exit", "error", err)
	}
	return nil
}

func initSentry(cfg config.Config, logr *zap.SugaredLogger) bool {
	if cfg.Sentry.DSN == "" {
		return false
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Environment,
		AttachStacktrace: true,
	}); err != nil {
		logr.Warnw("[http][server] sentry disabled", "error", err)
		return false
	}
	return true
}

// openEventLedger returns a nil interface, not a typed nil, when Redis is not
// configured so webhook deduplication is skipped.
func openEventLedger(ctx context.Context, cfg config.Config, logr *zap.SugaredLogger) (interfaces.IEventLedger, func(), error) {
	client, err := database.ConnectRedis(ctx, database.RedisSettings{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "redis")
	}
	if client == nil {
		logr.Infow("[http][server] REDIS_ADDR not set, webhook event deduplication disabled")
		return nil, func() {}, nil
	}
	return redisstore.NewEventLedger(client, redisstore.DefaultEventTTL), func() { _ = client.Close() }, nil
}

func devSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
