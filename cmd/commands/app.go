package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"taskboard/pkg/board"
	"taskboard/pkg/config"
	"taskboard/pkg/storage"
	"taskboard/pkg/storage/backend"
	"taskboard/pkg/tasks"
)

// app bundles everything a command needs for one invocation.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	st      storage.Interface
	adapter *tasks.Adapter
	store   *tasks.Store
	out     io.Writer
	color   bool
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openApp loads config, opens the configured backend and hydrates the store.
func openApp(ctx context.Context, cmd *cli.Command) (*app, error) {
	log := newLogger(cmd.Bool("debug"))
	slog.SetDefault(log)

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	st, err := backend.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	log.Debug("storage opened", "backend", cfg.Storage.Backend, "key", cfg.Storage.Key)

	adapter := tasks.NewAdapter(st, cfg.Storage.Key, tasks.WithAdapterLogger(log))
	store := tasks.New(ctx, adapter,
		tasks.WithLogger(log),
		tasks.WithErrorTTL(cfg.Errors.DisplayDuration.Duration()),
		tasks.WithSaveTimeout(cfg.Storage.Timeout.Duration()),
	)

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}

	return &app{
		cfg:     cfg,
		log:     log,
		st:      st,
		adapter: adapter,
		store:   store,
		out:     out,
		color:   color,
	}, nil
}

func (a *app) Close() error {
	return a.st.Close()
}

func (a *app) board() *board.List {
	return board.New(a.store, a.cfg.Board.PageSize)
}

// storeError turns the current store notice into a command error.
func (a *app) storeError() error {
	if msg, ok := a.store.Error(); ok {
		return errors.New(msg)
	}
	return nil
}

// applyListFlags configures search, filter and sort from the shared list flags.
func applyListFlags(cmd *cli.Command, l *board.List) error {
	status, err := tasks.ParseStatusFilter(cmd.String("status"))
	if err != nil {
		return err
	}
	sort := tasks.DefaultSort
	if cmd.IsSet("sort") {
		if sort.Field, err = tasks.ParseSortField(cmd.String("sort")); err != nil {
			return err
		}
	}
	if cmd.IsSet("order") {
		if sort.Order, err = tasks.ParseSortOrder(cmd.String("order")); err != nil {
			return err
		}
	}

	l.SetSort(sort.Field, sort.Order)
	l.SetSearch(cmd.String("search"))
	l.SetStatusFilter(status)
	return nil
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "Case-insensitive match on title or description",
		},
		&cli.StringFlag{
			Name:  "status",
			Usage: "Status filter: all, pending, in-progress, done",
			Value: string(tasks.FilterAll),
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Sort field: title, createdAt, status",
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "Sort order: asc, desc",
		},
	}
}

func parseIDArg(cmd *cli.Command, usage string) (tasks.ID, error) {
	id, err := tasks.ParseID(cmd.Args().First())
	if err != nil {
		return "", fmt.Errorf("usage: taskboard %s", usage)
	}
	return id, nil
}
