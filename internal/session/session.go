// Package session wires settings, logging, the album API client and the
// cover loader into one value shared by the command line tools.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/handiism/albums-tui/internal/api"
	"github.com/handiism/albums-tui/internal/config"
	"github.com/handiism/albums-tui/internal/covers"
	httpclient "github.com/handiism/albums-tui/internal/http"
	ioutils "github.com/handiism/albums-tui/internal/io"
	"github.com/handiism/albums-tui/internal/logging"
)

// Options selects where settings come from and where logs go.
type Options struct {
	// ConfigPath is the settings file; defaults to config.DefaultPath().
	ConfigPath string

	// EnvFiles are loaded before the environment is applied; defaults to ".env".
	EnvFiles []string

	// APIURL overrides the configured API URL when non-empty.
	APIURL string

	// LogOutput, when set, receives the log instead of the configured file.
	LogOutput io.Writer

	// Verbose forces debug logging.
	Verbose bool
}

// Session holds the wired services.
type Session struct {
	Settings *config.Settings
	Logger   *logging.Logger
	API      *api.Client

	// Covers is nil when cover art is disabled.
	Covers *covers.Loader

	closers []func() error
}

// Open loads settings and creates all services.
func Open(opts Options) (*Session, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath()
	}

	config.LoadDotEnv(opts.EnvFiles...)
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settings.ApplyEnv()
	if opts.APIURL != "" {
		settings.APIURL = opts.APIURL
	}
	if opts.Verbose {
		settings.LogLevel = "debug"
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Session{Settings: settings}

	logCfg := logging.Config{Level: settings.LogLevel, Format: settings.LogFormat}
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
		s.Logger = logging.New(logCfg)
	} else {
		logger, closeLog, err := logging.Open(logCfg, settings.LogFile)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.Logger = logger
		s.closers = append(s.closers, closeLog)
	}

	httpClient := httpclient.NewClient(httpclient.Options{
		Timeout: settings.RequestTimeout(),
		Token:   settings.APIToken,
		Logger:  s.Logger,
	})
	s.API, err = api.NewClient(settings.APIURL, httpClient)
	if err != nil {
		s.Close()
		return nil, err
	}

	if settings.ShowCovers {
		cache := ioutils.NewCache(settings.CoverCacheDir)
		if err := ioutils.EnsureDir(settings.CoverCacheDir); err != nil {
			s.Logger.Warn(err, "Cover cache disabled")
			cache = nil
		}
		s.Covers = covers.NewLoader(settings, s.API, cache, ProgressLogger(s.Logger))
	}

	s.Logger.Info(fmt.Sprintf("Session started against %s", settings.APIURL))
	return s, nil
}

// Close releases the log file.
func (s *Session) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// ProgressLogger forwards cover loader events to the operational log.
func ProgressLogger(log *logging.Logger) func(covers.ProgressEvent) {
	return func(event covers.ProgressEvent) {
		switch event.Level {
		case covers.LevelError:
			log.Error(event.Err, event.Message)
		case covers.LevelWarning:
			log.Warn(event.Err, event.Message)
		case covers.LevelVerbose:
			log.Debug(event.Message)
		default:
			log.Info(event.Message)
		}
	}
}
