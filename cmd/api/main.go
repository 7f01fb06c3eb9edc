package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"aipolyglot/internal/billing"
	"aipolyglot/internal/http/handlers"
	httpapi "aipolyglot/internal/http/httpapi"
	"aipolyglot/internal/infra"
	"aipolyglot/internal/infra/credentials"
	"aipolyglot/internal/infra/geoip"
	"aipolyglot/internal/middleware"
	"aipolyglot/internal/providers/translate"
	"aipolyglot/internal/quota"
	"aipolyglot/internal/speech"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	// Provider keys can live in the environment or in the credentials
	// table; the env vars win.
	creds := credentials.NewStore(runner)
	apiKey := cfg.OpenAIAPIKey
	if apiKey == "" {
		keyCtx, cancelKey := context.WithTimeout(ctx, 5*time.Second)
		apiKey, err = creds.OpenAIAPIKey(keyCtx)
		cancelKey()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load openai key")
		}
	}
	stripeKey := cfg.StripeSecretKey
	if stripeKey == "" {
		keyCtx, cancelKey := context.WithTimeout(ctx, 5*time.Second)
		stripeKey, err = creds.Token(keyCtx, credentials.ProviderStripe)
		cancelKey()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load stripe key")
		}
	}

	gateway, err := translate.NewGateway(translate.GatewayOptions{
		APIKey:  apiKey,
		BaseURL: cfg.OpenAIBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build translation gateway")
	}
	translator := translate.NewService(gateway, translate.Models{
		Translation: cfg.OpenAIModel,
		Detection:   cfg.DetectionModel,
		Legacy:      cfg.LegacyModel,
	})

	whisper, err := speech.NewWhisperEngine(speech.WhisperOptions{
		APIKey:  apiKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.WhisperModel,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build whisper engine")
	}

	clientOrigin := "http://localhost:3000"
	if len(cfg.AllowedOrigins) > 0 {
		clientOrigin = cfg.AllowedOrigins[0]
	}
	bridge := billing.NewBridge(billing.Config{
		SecretKey:      stripeKey,
		PublishableKey: cfg.StripePublishableKey,
		PriceID:        cfg.StripePriceID,
		WebhookSecret:  cfg.StripeWebhookSecret,
		SuccessURL:     clientOrigin + cfg.CheckoutSuccessPath,
		CancelURL:      clientOrigin + cfg.CheckoutCancelPath,
	}, billing.NewPGAccountStore(runner), logger)

	geoResolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var countryLookup middleware.CountryLookup
	if geoResolver != nil {
		countryLookup = geoResolver.CountryCode
	}

	app := &handlers.App{
		Config:     cfg,
		Logger:     logger,
		SQL:        runner,
		JWTSecret:  cfg.JWTSecret,
		Translator: translator,
		Ledger:     quota.NewLedger(runner, cfg.FreeTranslationLimit),
		Billing:    bridge,
		Speech:     speech.NewAdapter(whisper, logger),
	}

	router := httpapi.NewRouter(app, countryLookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
