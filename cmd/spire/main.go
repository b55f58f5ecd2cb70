package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term"

	"github.com/omarnabikhan/spire"
	"github.com/omarnabikhan/spire/internal"
	"github.com/omarnabikhan/spire/internal/build_version"
	"github.com/omarnabikhan/spire/internal/cli"
	"github.com/omarnabikhan/spire/internal/config"
	screen "github.com/omarnabikhan/spire/internal/term"
	"github.com/omarnabikhan/spire/internal/view"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "spire: %v\n", err)
		var tooMany *cli.TooManyArgumentsError
		var badOpt *cli.UnrecognizedOptionError
		if errors.As(err, &tooMany) || errors.As(err, &badOpt) {
			fmt.Fprintln(os.Stderr, cli.Usage("spire"))
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd, err := cli.Parse(args)
	if err != nil {
		return err
	}
	if cmd.Version {
		fmt.Printf("spire %s\n", build_version.GetVersion())
		return nil
	}

	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	// Load before touching the terminal so errors print normally.
	editor, err := internal.NewEditor(cmd.Path, logger)
	if err != nil {
		return err
	}
	defer editor.Close()

	// Snapshot the tty before curses changes it. Deferred first so it runs after scr.Close on every
	// exit path and puts back the original modes even when curses left them half restored.
	restoreTTY := snapshotTTY(logger)
	defer restoreTTY()

	scr, err := screen.Init()
	if err != nil {
		return err
	}
	defer scr.Close()

	// Also cleanup on process exit.
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		sig := <-signalChan
		logger.Printf("exiting on %s", sig)
		scr.Close()
		restoreTTY()
		os.Exit(0)
	}()

	return loop(editor, scr, view.New(cfg.TabWidth, cfg.Verbose))
}

// snapshotTTY records the controlling terminal's attributes and returns a func that restores
// them once. Without a tty the returned func does nothing.
func snapshotTTY(logger *log.Logger) func() {
	tty, err := term.Open("/dev/tty")
	if err != nil {
		logger.Printf("tty snapshot unavailable: %v", err)
		return func() {}
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			if err := tty.Restore(); err != nil {
				logger.Printf("restore tty: %v", err)
			}
			tty.Close()
		})
	}
}

func loop(editor *internal.Session, scr *screen.Screen, v *view.View) error {
	mutated := true
	for {
		v.Sync(editor, mutated)
		cursor := editor.Cursor()
		height, width := scr.Size()
		scr.Draw(v.Frame(view.State{
			Row:      cursor.Row,
			Col:      cursor.Col,
			Mode:     editor.Mode().String(),
			Message:  editor.Message(),
			Modified: editor.Modified(),
			Build:    build_version.GetVersion(),
		}, height, width))

		ev := scr.ReadKey()
		if ev.Code == spire.KeyFunction && ev.Fn == 12 {
			// F12 toggles the debug line.
			v.ToggleVerbose()
			mutated = false
			continue
		}
		action, err := editor.Handle(ev)
		if err != nil {
			return err
		}
		if action == spire.QuitRequested {
			return nil
		}
		mutated = action.Mutated()
	}
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "spire: ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
