// Package cmd implements the CLI command structure for taskpad.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"taskpad/internal/config"
	"taskpad/internal/kvstore"
	"taskpad/internal/logging"
	"taskpad/internal/task"
	"taskpad/internal/theme"
	"taskpad/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskpad CLI.
func Run(args []string) error {
	fs := flag.NewFlagSet("taskpad", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Default to the interactive UI when no subcommand is given.
	subcommand := "tui"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(cfg)
	case "ls":
		return lsCommand(cfg, remaining)
	case "add":
		return addCommand(cfg, remaining)
	case "done":
		return doneCommand(cfg, remaining)
	case "rm":
		return rmCommand(cfg, remaining)
	case "clear":
		return clearCommand(cfg)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// env bundles everything a command needs against one open store.
type env struct {
	logger *log.Logger
	store  kvstore.Store
	list   *task.List
	themes *theme.Manager
}

func (e *env) close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("could not close store", "err", err)
	}
}

// openEnv opens the persistence file and loads application state. When
// the file cannot be opened the session runs on an in-memory store so
// the UI still works; nothing from that session survives restart.
func openEnv(cfg *config.Config) *env {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewConsole(opts)

	var store kvstore.Store
	bolt, err := kvstore.OpenBolt(cfg.DataFile)
	if err != nil {
		logger.Warn("could not open data file, changes will not be saved", "path", cfg.DataFile, "err", err)
		store = kvstore.NewMemory()
	} else {
		store = bolt
	}

	list := task.NewList(store, logger)
	list.SetFilter(task.ParseFilter(cfg.Filter))
	themes := theme.NewManager(store, logger, cfg.DarkDefault())

	return &env{logger: logger, store: store, list: list, themes: themes}
}

func tuiCommand(cfg *config.Config) error {
	e := openEnv(cfg)
	defer e.close()
	return ui.Run(e.list, e.themes)
}

func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskpad ls", flag.ContinueOnError)
	filter := fs.String("filter", cfg.Filter, "Filter (all|active|completed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e := openEnv(cfg)
	defer e.close()

	e.list.SetFilter(task.ParseFilter(*filter))
	tasks := e.list.Visible()
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, t := range tasks {
		fmt.Println(formatTask(t))
	}
	return nil
}

func addCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskpad add", flag.ContinueOnError)
	priority := fs.String("priority", string(task.PriorityMedium), "Priority (low|medium|high)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		return fmt.Errorf("usage: taskpad add [-priority low|medium|high] <text>")
	}

	e := openEnv(cfg)
	defer e.close()

	e.list.Add(text, task.ParsePriority(*priority))
	fmt.Println(formatTask(e.list.Tasks()[0]))
	return nil
}

func doneCommand(cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	e := openEnv(cfg)
	defer e.close()

	e.list.Toggle(id)
	return nil
}

func rmCommand(cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	e := openEnv(cfg)
	defer e.close()

	e.list.Delete(id)
	return nil
}

func clearCommand(cfg *config.Config) error {
	e := openEnv(cfg)
	defer e.close()

	before := e.list.Len()
	e.list.ClearCompleted()
	fmt.Printf("Cleared %d completed task(s).\n", before-e.list.Len())
	return nil
}

func versionCommand() error {
	fmt.Printf("taskpad %s\n", Version)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one task id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, nil
}

func formatTask(t task.Task) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	return fmt.Sprintf("%s %4d (%s) %s", checkbox, t.ID, t.Priority, t.Text)
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: taskpad [flags] [command]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui        Open the interactive UI (default)")
	fmt.Fprintln(w, "  ls         List tasks")
	fmt.Fprintln(w, "  add        Add a task")
	fmt.Fprintln(w, "  done       Toggle a task by id")
	fmt.Fprintln(w, "  rm         Delete a task by id")
	fmt.Fprintln(w, "  clear      Remove completed tasks")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  help       Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
