package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/SystemBuilders/ListKey/internal/listservice"
	"github.com/SystemBuilders/ListKey/internal/node"
)

type flags struct {
	ip            string
	port          string
	capacity      int
	shards        int
	logLevel      string
	logFile       string
	logMaxSize    int
	logMaxBackups int
	logMaxAge     int
}

func parseFlags(args []string) (flags, error) {
	defaults := listservice.DefaultOptions()

	var f flags
	fs := pflag.NewFlagSet("listkey", pflag.ContinueOnError)
	fs.StringVar(&f.ip, "ip", "127.0.0.1", "IP address to listen on")
	fs.StringVar(&f.port, "port", "1234", "port to listen on")
	fs.IntVar(&f.capacity, "capacity", defaults.Capacity, "maximum number of lists hosted at once")
	fs.IntVar(&f.shards, "shards", defaults.Shards, "number of independently locked shards")
	fs.StringVar(&f.logLevel, "log-level", zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	fs.StringVar(&f.logFile, "log-file", "", "also write logs to this file, rotating it by size")
	fs.IntVar(&f.logMaxSize, "log-max-size", 100, "megabytes after which the log file is rotated")
	fs.IntVar(&f.logMaxBackups, "log-max-backups", 3, "number of rotated log files to keep")
	fs.IntVar(&f.logMaxAge, "log-max-age", 28, "days to keep rotated log files")
	err := fs.Parse(args)
	return f, err
}

// newLogger builds the root logger. The returned closer must be closed
// once logging is done.
func newLogger(f flags) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(f.logLevel)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	var (
		w      io.Writer = os.Stdout
		closer io.Closer = io.NopCloser(nil)
	)
	if f.logFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   f.logFile,
			MaxSize:    f.logMaxSize,
			MaxBackups: f.logMaxBackups,
			MaxAge:     f.logMaxAge,
		}
		w = zerolog.MultiLevelWriter(os.Stdout, rotating)
		closer = rotating
	}

	log := zerolog.New(w).With().Timestamp().Logger().Level(level)
	return log, closer, nil
}

func run(ctx context.Context, args []string) (err error) {
	f, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, logCloser, err := newLogger(f)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, logCloser.Close())
	}()

	ls, err := listservice.NewSimpleListService(log, listservice.Options{
		Capacity: f.capacity,
		Shards:   f.shards,
	})
	if err != nil {
		return err
	}

	scfg := listservice.NewSimpleConfig(f.ip, f.port)
	return node.Start(ctx, ls, *scfg, log)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
