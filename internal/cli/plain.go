package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/countdown/internal/cli/formatter"
	"github.com/alexanderramin/countdown/internal/service"
)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\033[K"

// runPlain redraws a single countdown line every refresh until ctx is
// canceled or maxCycles targets (when positive) have been reached.
func runPlain(ctx context.Context, w io.Writer, timer service.TimerService, refresh time.Duration, maxCycles int) error {
	frame, err := timer.Start(ctx)
	if err != nil {
		if interrupted(ctx, err) {
			return nil
		}
		return fmt.Errorf("starting countdown: %w", err)
	}
	if note := resumeNote(timer, frame); note != "" {
		fmt.Fprintln(w, formatter.Dim(note))
	}

	completed := 0
	// show prints frame and reports whether maxCycles has been reached.
	show := func(frame service.Frame) bool {
		if frame.Completed() {
			completed++
			fmt.Fprintln(w, clearLine+formatter.FormatCompletion(frame))
			if maxCycles > 0 && completed >= maxCycles {
				return true
			}
		}
		fmt.Fprint(w, clearLine+formatter.FormatFrameLine(frame))
		return false
	}
	if show(frame) {
		return nil
	}

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return nil
		case <-ticker.C:
			frame, err := timer.Tick(ctx)
			if err != nil {
				if interrupted(ctx, err) {
					fmt.Fprintln(w)
					return nil
				}
				fmt.Fprintln(w)
				return fmt.Errorf("updating countdown: %w", err)
			}
			if show(frame) {
				return nil
			}
		}
	}
}
