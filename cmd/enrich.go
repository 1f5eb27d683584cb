package main

import (
	"context"
	"fmt"
	"time"

	"cratedig/internal/formatter"
	"cratedig/internal/shared"
	"cratedig/internal/tasks"
	"cratedig/internal/ui"

	"github.com/urfave/cli/v3"
)

// rowDelay is the fixed inter-row delay between remote-calling rows.
const rowDelay = 100 * time.Millisecond

// Enrich batch-enriches an input CSV with original-album data and writes
// the result next to it. Row count and order are always preserved.
func (r *Runner) Enrich(ctx context.Context, cmd *cli.Command) error {
	input := cmd.StringArg("input")
	output := cmd.StringArg("output")
	if input == "" || output == "" {
		return fmt.Errorf("%w: usage: cratedig enrich <input.csv> <output.csv>", shared.ErrValidation)
	}

	rows, err := formatter.ReadInputCSV(input)
	if err != nil {
		return err
	}

	svc, err := r.service(ctx)
	if err != nil {
		return err
	}

	enricher := tasks.NewEnricher(tasks.NewFinder(svc), shared.NewPacer(rowDelay), r.logger)

	progress := make(chan tasks.ProgressUpdate, len(rows))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.writePlain("%s\n", update.Message)
		}
	}()

	enriched, err := enricher.Run(ctx, rows, progress)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	if err := formatter.WriteEnrichedCSV(output, enriched); err != nil {
		return err
	}

	found := 0
	for _, row := range enriched {
		if row.NewAlbumName != "" {
			found++
		}
	}

	r.writePlainln("%s", ui.OK(fmt.Sprintf("✓ %d rows written to %s (%d original albums found)", len(enriched), output, found)))
	return nil
}
