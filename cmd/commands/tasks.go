package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"taskboard/pkg/tasks"
)

const timeLayout = "2006-01-02 15:04"

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List tasks page by page",
		Flags: append(listFlags(), &cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Usage:   "Page number",
			Value:   1,
		}),
		Action: runList,
	}
}

func runList(ctx context.Context, cmd *cli.Command) error {
	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	l := a.board()
	if err := applyListFlags(cmd, l); err != nil {
		return err
	}

	if l.TotalPages() == 0 {
		fmt.Fprintln(a.out, "No tasks found.")
		return nil
	}
	if page := cmd.Int("page"); page != 1 && !l.GoToPage(page) {
		return fmt.Errorf("page %d out of range 1..%d", page, l.TotalPages())
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED\tSTATUS")
	for _, t := range l.Tasks() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			t.ID,
			t.Title,
			t.CreatedAt.Local().Format(timeLayout),
			a.badge(t.Status),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	first, last, total := l.Range()
	nums := make([]string, 0, 5)
	for _, n := range l.PageNumbers() {
		if n == l.Page() {
			nums = append(nums, "["+strconv.Itoa(n)+"]")
		} else {
			nums = append(nums, strconv.Itoa(n))
		}
	}
	fmt.Fprintf(a.out, "\nShowing %d-%d of %d tasks  pages: %s\n", first, last, total, strings.Join(nums, " "))
	return nil
}

// NewAddCommand returns the add subcommand.
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Create a task",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "Task title",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Task description",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Initial status: pending, in-progress, done",
				Value: string(tasks.StatusPending),
			},
		},
		Action: runAdd,
	}
}

func runAdd(ctx context.Context, cmd *cli.Command) error {
	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	t, ok := a.store.CreateTask(tasks.FormData{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Status:      tasks.Status(cmd.String("status")),
	})
	if !ok {
		return a.storeError()
	}
	fmt.Fprintf(a.out, "Task %s created.\n", t.ID)
	return a.storeError()
}

// NewShowCommand returns the show subcommand.
func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show task details",
		ArgsUsage: "<task_id>",
		Action:    runShow,
	}
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "show <task_id>")
	if err != nil {
		return err
	}
	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	t, ok := a.store.GetTaskByID(id)
	if !ok {
		return fmt.Errorf("task %s not found", id)
	}

	fmt.Fprintf(a.out, "ID:          %s\n", t.ID)
	fmt.Fprintf(a.out, "Title:       %s\n", t.Title)
	fmt.Fprintf(a.out, "Status:      %s\n", a.badge(t.Status))
	fmt.Fprintf(a.out, "Created:     %s\n", t.CreatedAt.Local().Format(timeLayout))
	if !t.UpdatedAt.IsZero() {
		fmt.Fprintf(a.out, "Updated:     %s\n", t.UpdatedAt.Local().Format(timeLayout))
	}
	if t.Description != "" {
		fmt.Fprintf(a.out, "\nDescription:\n%s\n", t.Description)
	}
	return nil
}

// NewUpdateCommand returns the update subcommand.
func NewUpdateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Change title, description or status of a task",
		ArgsUsage: "<task_id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
			&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
			&cli.StringFlag{Name: "status", Usage: "New status"},
		},
		Action: runUpdate,
	}
}

func runUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "update [flags] <task_id>")
	if err != nil {
		return err
	}
	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var upd tasks.Update
	if cmd.IsSet("title") {
		v := cmd.String("title")
		upd.Title = &v
	}
	if cmd.IsSet("description") {
		v := cmd.String("description")
		upd.Description = &v
	}
	if cmd.IsSet("status") {
		v := tasks.Status(cmd.String("status"))
		upd.Status = &v
	}

	_, found := a.store.GetTaskByID(id)
	if _, ok := a.store.UpdateTask(id, upd); !ok {
		if !found {
			fmt.Fprintf(a.out, "Task %s not found, nothing changed.\n", id)
		}
		return a.storeError()
	}
	fmt.Fprintf(a.out, "Task %s updated.\n", id)
	return a.storeError()
}

// NewDeleteCommand returns the delete subcommand.
func NewDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a task",
		ArgsUsage: "<task_id>",
		Action:    runDelete,
	}
}

func runDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "delete <task_id>")
	if err != nil {
		return err
	}
	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.store.DeleteTask(id) {
		fmt.Fprintf(a.out, "Task %s not found, nothing changed.\n", id)
		return a.storeError()
	}
	fmt.Fprintf(a.out, "Task %s deleted.\n", id)
	return a.storeError()
}

// NewStatsCommand returns the stats subcommand.
func NewStatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show task counts by status",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			s := a.store.Stats()
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Total\t%d\n", s.Total)
			fmt.Fprintf(w, "%s\t%d\n", tasks.StatusPending.Label(), s.Pending)
			fmt.Fprintf(w, "%s\t%d\n", tasks.StatusInProgress.Label(), s.InProgress)
			fmt.Fprintf(w, "%s\t%d\n", tasks.StatusDone.Label(), s.Done)
			return w.Flush()
		},
	}
}
