// Package cli implements the albums command line tool.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/albums-tui/internal/session"
	"github.com/handiism/albums-tui/internal/tui"
)

// globalFlags are shared by all subcommands.
type globalFlags struct {
	configPath string
	apiURL     string
	verbose    bool
}

func Execute(ctx context.Context) error {
	return NewRoot().ExecuteContext(ctx)
}

var runTUI = func(opts tui.Options) error {
	return tui.Run(opts)
}

func NewRoot() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:          "albums",
		Short:        "Browse and create photo albums",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(nil)
			if err != nil {
				return err
			}
			defer s.Close()

			opts := tui.Options{
				Context:          cmd.Context(),
				Backend:          s.API,
				NavBar:           tui.NewNavBar(s.Settings.APIURL, s.Settings.APIToken),
				Logger:           s.Logger,
				PlaceholderCount: s.Settings.PlaceholderCount,
				ThumbRows:        s.Settings.CoverThumbHeight,
			}
			if s.Covers != nil {
				opts.Covers = s.Covers
			}
			return runTUI(opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to config file")
	pf.StringVar(&flags.apiURL, "api-url", "", "Album API base URL (overrides config)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		listCmd(flags),
		showCmd(flags),
		createCmd(flags),
		coversCmd(flags),
		initConfigCmd(flags),
	)
	return root
}

// open starts a session. Verbose runs log to stderr, others to the log file.
func (f *globalFlags) open(stderr io.Writer) (*session.Session, error) {
	opts := session.Options{
		ConfigPath: f.configPath,
		APIURL:     f.apiURL,
		Verbose:    f.verbose,
	}
	if f.verbose && stderr != nil {
		opts.LogOutput = stderr
	}
	return session.Open(opts)
}
