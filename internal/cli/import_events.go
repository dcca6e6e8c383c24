package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"aventra/internal/models"
	"aventra/internal/repository"

	"github.com/spf13/cobra"
)

const defaultEventSource = "csv"

func newImportEventsCommand(open DBOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "import-events <file.csv>",
		Short: "Import events from a CSV file",
		Long: `Import events from a CSV file with the header
title,description,start_time,end_time,venue,lat,lng,url,source

Empty cells are stored as NULL and a missing source defaults to "csv".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			db, err := open()
			if err != nil {
				return err
			}
			defer db.CloseDB()

			n, err := ImportEvents(cmd.Context(), repository.NewEventRepository(db.DB), f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows into events table\n", n)
			return nil
		},
	}
}

// ImportEvents reads CSV rows keyed by header name and stores them in one
// batch. Columns missing from the header are treated as empty.
func ImportEvents(ctx context.Context, repo repository.EventRepository, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	var events []models.Event
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		cell := func(name string) *string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return nil
			}
			v := strings.TrimSpace(record[i])
			if v == "" {
				return nil
			}
			return &v
		}

		source := cell("source")
		if source == nil {
			def := defaultEventSource
			source = &def
		}

		events = append(events, models.Event{
			Title:       cell("title"),
			Description: cell("description"),
			StartTime:   cell("start_time"),
			EndTime:     cell("end_time"),
			Venue:       cell("venue"),
			Lat:         parseCoord(cell("lat")),
			Lng:         parseCoord(cell("lng")),
			URL:         cell("url"),
			Source:      source,
		})
	}

	if len(events) == 0 {
		return 0, nil
	}

	return repo.CreateBatch(ctx, events)
}

// parseCoord returns nil for empty or unparsable values.
func parseCoord(s *string) *float64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &v
}
