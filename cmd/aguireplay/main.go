// Package main replays a recorded AG-UI event stream through the full
// pipeline and prints the resulting session snapshot as JSON.
//
// Input is one wire-format event per line (JSONL), read from stdin or
// from a file:
//
//	aguireplay -input run.jsonl
//	curl -N https://agent.example.com/run | aguireplay -strict
//
// Flags:
//
//	-input  - Path to a JSONL event log (default: stdin)
//	-strict - Abort on the first protocol violation instead of logging it
//	-v      - Verbose logging
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spetersoncode/agui"
	"github.com/spetersoncode/agui/events"
	"github.com/spetersoncode/agui/pipeline"
)

func main() {
	input := flag.String("input", "", "path to a JSONL event log (default: stdin)")
	strict := flag.Bool("strict", false, "abort on the first protocol violation")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *input, *strict); err != nil {
		logger.Error("replay failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, path string, strict bool) error {
	var in io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	evs, err := readEvents(in, logger)
	if err != nil {
		return err
	}
	logger.Debug("loaded event log", "events", len(evs))

	opts := []pipeline.RunnerOption{pipeline.WithLogger(logger)}
	if strict {
		opts = append(opts, pipeline.WithStrict())
	}
	runner := pipeline.NewRunner(pipeline.FromSlice(evs), opts...)

	session, err := runner.Run(ctx, agui.RunAgentInput{})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// readEvents decodes one event per line, skipping blank lines. Decode
// failures are logged with their line number and skipped, so a log with
// a few unknown event types still replays.
func readEvents(in io.Reader, logger *slog.Logger) ([]events.Event, error) {
	var evs []events.Event

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		ev, err := events.FromJSON(raw)
		if err != nil {
			logger.Warn("skipping undecodable event", "line", line, "error", err)
			continue
		}
		evs = append(evs, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return evs, nil
}
