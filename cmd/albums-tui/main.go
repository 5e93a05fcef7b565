package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/albums-tui/internal/model"
	"github.com/handiism/albums-tui/internal/session"
	"github.com/handiism/albums-tui/internal/tui"
)

var runTUI = tui.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("albums-tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFlag  = fs.String("config", "", "Path to config file")
		apiURLFlag  = fs.String("api-url", "", "Album API base URL (overrides config)")
		verboseFlag = fs.Bool("verbose", false, "Write debug output to the log file")
		albumFlag   = fs.Int64("album", 0, "Open the detail screen of this album ID")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	s, err := session.Open(session.Options{
		ConfigPath: *configFlag,
		APIURL:     *apiURLFlag,
		Verbose:    *verboseFlag,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := tui.Options{
		Context:          ctx,
		Backend:          s.API,
		NavBar:           tui.NewNavBar(s.Settings.APIURL, s.Settings.APIToken),
		Logger:           s.Logger,
		PlaceholderCount: s.Settings.PlaceholderCount,
		ThumbRows:        s.Settings.CoverThumbHeight,
	}
	if s.Covers != nil {
		opts.Covers = s.Covers
	}
	if *albumFlag > 0 {
		opts.StartPath = model.AlbumPath(*albumFlag)
	}

	if err := runTUI(opts); err != nil {
		s.Logger.Error(err, "TUI exited with error")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
