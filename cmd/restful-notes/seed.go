package main

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/joestump/restful-notes/internal/fixtures"
	"github.com/joestump/restful-notes/internal/hal"
	"github.com/joestump/restful-notes/internal/resource"
	"github.com/joestump/restful-notes/internal/store"
	"github.com/joestump/restful-notes/internal/validation"
)

func newSeedCmd() *cobra.Command {
	var (
		file  string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample notes and tags",
		Long:  "Load notes and tags from a YAML fixture file, or the built-in samples when --file is omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFixtures(file)
			if err != nil {
				return err
			}

			cfg, l, database, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			// Tag references only need the path, so any base works when none is configured.
			base := cfg.HTTP.BaseURL
			if base == nil {
				base = &url.URL{Scheme: "http", Host: "localhost"}
			}

			svc := resource.NewService(store.NewNoteStore(database), store.NewTagStore(database), validation.New())
			res, err := fixtures.Load(cmd.Context(), svc, resource.NewAssembler(hal.NewLinker(base)), f, reset)
			if err != nil {
				return err
			}

			l.Info().Int("tags", res.Tags).Int("notes", res.Notes).Bool("reset", reset).Msg("fixtures loaded")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture file (default: built-in samples)")
	cmd.Flags().BoolVar(&reset, "reset", false, "delete all notes and tags before loading")
	return cmd
}

func readFixtures(path string) (*fixtures.File, error) {
	if path == "" {
		return fixtures.Default()
	}
	return fixtures.ReadFile(path)
}
