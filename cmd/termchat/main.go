package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/xonecas/termchat/internal/config"
	"github.com/xonecas/termchat/internal/constants"
	"github.com/xonecas/termchat/internal/core"
	"github.com/xonecas/termchat/internal/repl"
	"github.com/xonecas/termchat/internal/store"
	"github.com/xonecas/termchat/internal/transport"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "config.toml", "Path to config file")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		offline     = flag.Bool("offline", false, "Use the offline transport")
		check       = flag.Bool("check", false, "Check the transport session and contact list, then exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("termchat %s\n", Version)
		os.Exit(0)
	}

	_ = godotenv.Load()

	if err := initLogging(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("version", Version).Msg("Starting termchat")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err, "Failed to load config")
	}
	if *offline {
		cfg.UseOffline()
	}
	log.Debug().Interface("config", cfg).Msg("Configuration loaded")

	tr := newTransport(cfg)

	if *check {
		os.Exit(runCheck(tr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, tr); err != nil {
		fatal(err, "Session failed")
	}

	log.Info().Msg("termchat shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, tr transport.Transport) error {
	self, err := tr.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if self == "" {
		self = cfg.Account.DisplayName
	}

	printer := repl.NewPrinter(os.Stdout)
	bus := core.NewEventBus(constants.EventBusBufferSize)
	state := core.NewState()

	commander := core.NewCommander(state, tr, printer, bus, self)
	commander.SetRetryInterval(cfg.Startup.RetryInterval)
	inbound := core.NewInboundHandler(state, printer, bus, self)

	var journalGroup errgroup.Group
	if cfg.Journal.Enabled {
		s, err := openJournal(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer s.Close()

		journal := store.NewJournal(s, bus.Subscribe())
		journalGroup.Go(func() error {
			return journal.Run(context.Background())
		})
		log.Debug().Msg("Journal enabled")
	}

	printer.Info("Loading contacts")
	if err := commander.LoadContacts(ctx); err != nil {
		bus.Close()
		_ = journalGroup.Wait()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	sessionCtx, endSession := context.WithCancel(gctx)
	defer endSession()

	g.Go(func() error {
		defer endSession()
		return repl.NewLoop(os.Stdin, printer, commander).Run(sessionCtx)
	})
	g.Go(func() error {
		return tr.Listen(sessionCtx, inbound.Handle)
	})

	err = g.Wait()

	bus.Close()
	if jerr := journalGroup.Wait(); jerr != nil {
		log.Warn().Err(jerr).Msg("Journal stopped with error")
	}

	logoutCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if lerr := tr.Logout(logoutCtx); lerr != nil {
		log.Warn().Err(lerr).Msg("Logout failed")
	}
	printer.Info("Logged out")

	return err
}

func newTransport(cfg *config.Config) transport.Transport {
	if cfg.Transport.Kind == config.TransportOffline {
		return transport.NewOffline(cfg.Offline.Self, cfg.Offline.Contacts, cfg.Offline.Echo, cfg.Offline.EchoDelay)
	}
	return transport.NewBridge(transport.BridgeOptions{
		Endpoint:       cfg.Bridge.Endpoint,
		RequestTimeout: cfg.Bridge.RequestTimeout,
		PollInterval:   cfg.Bridge.PollInterval,
		PollBurst:      cfg.Bridge.PollBurst,
		SendRate:       cfg.Bridge.SendRate,
		SendBurst:      cfg.Bridge.SendBurst,
	})
}

func openJournal(path string) (*store.Store, error) {
	if path == "" {
		return store.New()
	}
	return store.Open(path)
}

func initLogging(debug bool) error {
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}

	// Open log file (truncate on startup)
	logPath := filepath.Join(dataDir, "termchat.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Log to file only (the REPL owns stdout)
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	return nil
}

func fatal(err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
