package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"crew/src/config"
	"crew/src/editor"
	"crew/src/input"
	"crew/src/logging"
	"crew/src/render"
	"crew/src/store"
	"crew/src/terminal"
)

type rootOptions struct {
	configPath string
	logFile    string
	noWatch    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "crew [file]",
		Short: "A small terminal text editor",
		Long: `crew edits one text file in the terminal.

Ctrl-S saves, Ctrl-Q quits. Quitting with unsaved changes asks for
confirmation by pressing Ctrl-Q again.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      editor.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = opts.logFile
			}
			if opts.noWatch {
				cfg.WatchFile = false
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return run(cfg, name)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath(), "config file (.toml, .yaml or .yml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append the session log to this file")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not report changes made to the file by other programs")
	return cmd
}

func run(cfg config.Config, name string) error {
	logger, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	tm, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer tm.Restore()

	rows, cols, err := tm.Size()
	if err != nil {
		logger.Printf("could not get window size: %v, using 24x80", err)
		rows, cols = 24, 80
	}

	files := store.NewFiles()
	ed := editor.New(editor.Options{
		Rows:           rows,
		Cols:           cols,
		QuitTimes:      cfg.QuitTimes,
		MessageTimeout: cfg.MessageTimeout.Std(),
		Store:          files,
		Logger:         logger,
	})

	var changes <-chan struct{}
	if name != "" {
		if err := ed.Open(name); err != nil {
			return fmt.Errorf("opening %s: %w", name, err)
		}
		if cfg.WatchFile {
			w, err := files.Watch(name)
			if err != nil {
				logger.Printf("not watching %s: %v", name, err)
			} else {
				defer w.Close()
				changes = w.Changes()
			}
		}
	}
	ed.SetStatus("HELP: Ctrl-S = save | Ctrl-Q = quit")

	resize, stopResize := notifyResize(tm, logger)
	defer stopResize()

	// Restore the terminal when killed from outside.
	sigTerm := make(chan os.Signal, 1)
	signal.Notify(sigTerm, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigTerm)
	go func() {
		sig := <-sigTerm
		logger.Printf("terminated by %v", sig)
		os.Stdout.Write(render.ClearScreen())
		tm.Restore()
		os.Exit(1)
	}()

	logger.Printf("started: %dx%d, file %q", rows, cols, name)
	return ed.Run(editor.Session{
		Keys:        input.NewDecoder(tm, cfg.KeyTimeout.Std()),
		Out:         tm,
		Resize:      resize,
		FileChanged: changes,
	})
}

// notifyResize delivers the new window size after every SIGWINCH. Only the
// latest size is kept when the editor falls behind.
func notifyResize(tm *terminal.Terminal, logger *log.Logger) (<-chan editor.Size, func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	sizes := make(chan editor.Size, 1)
	go func() {
		for range sig {
			rows, cols, err := tm.WindowSize()
			if err != nil {
				logger.Printf("window size: %v", err)
				continue
			}
			select {
			case <-sizes:
			default:
			}
			sizes <- editor.Size{Rows: rows, Cols: cols}
		}
	}()
	return sizes, func() {
		signal.Stop(sig)
		close(sig)
	}
}
