package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/local-weather/config"
	"ulascansenturk/local-weather/internal/api/v1/handlers"
	"ulascansenturk/local-weather/internal/connectivity"
	"ulascansenturk/local-weather/internal/location"
	"ulascansenturk/local-weather/internal/permission"
	"ulascansenturk/local-weather/internal/presentation"
	"ulascansenturk/local-weather/internal/providers"
	"ulascansenturk/local-weather/internal/service"
	"ulascansenturk/local-weather/internal/shell"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	conf, err := config.LoadConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	var logOut io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logOut = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	logger := zerolog.New(logOut).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	deps, err := buildDependencies(conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	if conf.Serve {
		serve(ctx, mainCtxStop, conf, deps)
		return
	}

	terminal := shell.NewTerminal(os.Stdout)
	deps.Shell = terminal
	pipeline := service.NewPipeline(deps)

	handleSignals(ctx, mainCtxStop, pipeline.Close)

	outcome := <-pipeline.Start(ctx)
	pipeline.Close()
	mainCtxStop()

	if outcome.Err != nil {
		os.Exit(1)
	}
}

func buildDependencies(conf *config.Config) (service.Dependencies, error) {
	coords, err := conf.FixedCoordinates()
	if err != nil {
		return service.Dependencies{}, err
	}

	tz, err := conf.Location()
	if err != nil {
		return service.Dependencies{}, err
	}

	policy, err := permission.ParsePolicy(conf.LocationPermission)
	if err != nil {
		return service.Dependencies{}, err
	}

	region := conf.Region
	if region == "" {
		region = presentation.RegionFromLocale(conf.Locale)
	}
	log.Debug().Str("region", region).Str("locale", conf.Locale).Msg("region resolved")

	var prompter permission.Prompter
	switch policy {
	case permission.PolicyAsk:
		prompter = permission.NewInteractivePrompter(os.Stdin, os.Stderr)
	default:
		prompter = permission.NewPolicyPrompter(policy == permission.PolicyGranted)
	}

	// one client for geolocation and weather calls
	httpClient := &http.Client{Timeout: conf.HTTPTimeoutDuration()}

	return service.Dependencies{
		Location: location.NewSource(location.PriorityHighAccuracy,
			location.NewFixedProvider(coords),
			location.NewNetworkProvider(conf.GeoIPURL, conf.LocationUpdateInterval, httpClient),
		),
		Permissions: prompter,
		Network:     connectivity.NewChecker(conf.NetworkLegacyMode),
		WeatherAPI: providers.NewWeatherAPIService(providers.Options{
			BaseURL: conf.OpenWeatherBaseURL,
			APIKey:  conf.OpenWeatherAPIKey,
			Client:  httpClient,
		}),
		Formatter: presentation.NewFormatter(region, tz),
	}, nil
}

func serve(ctx context.Context, mainCtxStop context.CancelFunc, conf *config.Config, deps service.Dependencies) {
	screen := handlers.NewScreen()
	deps.Shell = screen
	pipeline := service.NewPipeline(deps)

	handler := handlers.NewWeatherHandler(pipeline, screen, conf.RequestTimeout)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.RequestTimeout,
	}

	handleSignals(ctx, mainCtxStop, func() {
		pipeline.Close()
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	go func() {
		outcome := <-pipeline.Start(ctx)
		if outcome.Err != nil {
			log.Warn().Err(outcome.Err).Msg("initial weather load failed")
		}
	}()

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
			return
		}

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
