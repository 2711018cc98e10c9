package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"queue-bot/dispatcher"
	"queue-bot/domain"
	apperrors "queue-bot/errors"
	"queue-bot/internal"
	"queue-bot/repositories"
	"queue-bot/runtime"
	"queue-bot/runtime/workers"
	"queue-bot/sink"
	"queue-bot/transport"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the queue bot to a stdin REPL. Each line is "<name>: <message>",
// replies are printed to stdout and kept in the transcript.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Transcript (BadgerDB)
	db, err := openTranscript(config)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	repository := repositories.NewTranscriptRepository(db, log, config.LimitEntries)

	// 3. Dispatcher, supervision & orchestration
	d := dispatcher.NewDispatcher(log, config.Prefix)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, sup, d,
		config.NumberOfWorkers, config.BufferSize, config.SinkTimeout, config.HealthInterval)
	console := sink.NewConsoleSink(os.Stdout, config.Colours)
	orchestrator.RegisterSinks(console, sink.NewTranscriptSink(repository, log))

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		orchestrator.Start(ctx)
		close(done)
	}()

	// 5. Read stdin until EOF or a signal
	parser := transport.NewParser(transport.NewRoster(config.Staff()))
	lines := readLines(os.Stdin)
	log.Info("Queue bot ready", "prefix", config.Prefix, "staff", config.Staff())

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down...")
			orchestrator.Stop()
			<-done
			return nil
		case line, ok := <-lines:
			if !ok {
				orchestrator.Close()
				<-done
				log.Info("Program stopped cleanly")
				return nil
			}
			if line == "" {
				continue
			}
			msg, err := parser.Parse(line)
			if err != nil {
				log.Warn("Line rejected", "error", err)
				continue
			}
			if err := orchestrator.Submit(msg); err != nil {
				log.Warn("Message not submitted", "error", err)
				if errors.Is(err, apperrors.ErrInboundFull) {
					busy := domain.NewOutbound(msg, runtime.BusyReply(msg.Author), time.Now().UTC())
					_ = console.Consume(ctx, busy)
				}
			}
		}
	}
}

func openTranscript(config internal.Config) (*badger.DB, error) {
	opts := badger.DefaultOptions(config.TranscriptFilepath)
	if config.InMemoryTranscript() {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	return badger.Open(opts.WithLoggingLevel(badger.WARNING))
}

func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			slog.Default().Error("Reading stdin failed", "error", err)
		}
	}()
	return lines
}
