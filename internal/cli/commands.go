package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/handiism/albums-tui/internal/api"
	"github.com/handiism/albums-tui/internal/config"
	"github.com/handiism/albums-tui/internal/model"
)

const dateLayout = "2006-01-02"

func listCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List albums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			albums, err := s.API.FetchAlbums(cmd.Context())
			if err != nil {
				s.Logger.Error(err, "Error loading albums")
				return errors.New("failed to load albums")
			}
			out := cmd.OutOrStdout()
			if len(albums) == 0 {
				fmt.Fprintln(out, "No albums yet. Create your first album!")
				return nil
			}
			for _, a := range albums {
				printAlbumRow(out, a)
			}
			return nil
		},
	}
}

func showCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid album id %q", args[0])
			}

			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			album, err := s.API.FetchAlbum(cmd.Context(), id)
			if errors.Is(err, api.ErrNotFound) {
				return fmt.Errorf("album %d not found", id)
			}
			if err != nil {
				s.Logger.Error(err, "Error loading album")
				return fmt.Errorf("failed to load album %d", id)
			}
			printAlbum(cmd.OutOrStdout(), album)
			return nil
		},
	}
}

func createCmd(flags *globalFlags) *cobra.Command {
	var req model.NewAlbum
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req = req.Normalized()
			if err := req.Validate(); err != nil {
				return err
			}

			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			album, err := s.API.CreateAlbum(cmd.Context(), req)
			if err != nil {
				s.Logger.Error(err, "Error creating album")
				return errors.New("failed to create album")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created album %d: %s\n", album.ID, album.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "Album title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Album description")
	cmd.Flags().BoolVar(&req.IsShared, "shared", false, "Share the album with others")
	return cmd
}

func coversCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "covers",
		Short: "Download all album covers into the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			if s.Covers == nil {
				return errors.New("cover art is disabled (show_covers is false)")
			}

			albums, err := s.API.FetchAlbums(cmd.Context())
			if err != nil {
				s.Logger.Error(err, "Error loading albums")
				return errors.New("failed to load albums")
			}
			if err := s.Covers.Prefetch(cmd.Context(), albums); err != nil {
				return err
			}
			fetched, cached, failed := s.Covers.GetProgress()
			fmt.Fprintf(cmd.OutOrStdout(), "Covers: %d downloaded, %d cached, %d failed\n", fetched, cached, failed)
			return nil
		},
	}
}

func initConfigCmd(flags *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a settings file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			settings := config.DefaultSettings()
			if flags.apiURL != "" {
				settings.APIURL = flags.apiURL
			}
			if err := settings.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func printAlbumRow(w io.Writer, a model.Album) {
	shared := ""
	if a.IsShared {
		shared = "shared"
	}
	date := ""
	if t := a.LastModified(); !t.IsZero() {
		date = t.Format(dateLayout)
	}
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Title, date, shared)
}

func printAlbum(w io.Writer, a model.Album) {
	fmt.Fprintf(w, "ID:          %d\n", a.ID)
	fmt.Fprintf(w, "Title:       %s\n", a.Title)
	if a.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", a.Description)
	}
	fmt.Fprintf(w, "Shared:      %t\n", a.IsShared)
	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created:     %s\n", a.CreatedAt.Format(dateLayout))
	}
	if !a.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "Updated:     %s\n", a.UpdatedAt.Format(dateLayout))
	}
	if a.HasCover() {
		fmt.Fprintf(w, "Cover:       %s\n", a.CoverImage)
	}
}
