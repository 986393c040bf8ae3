package main

import (
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/clipboard"
	"github.com/alexisbeaulieu97/canvasgen/internal/logger"
	"github.com/alexisbeaulieu97/canvasgen/internal/session"
	"github.com/alexisbeaulieu97/canvasgen/internal/store"
	"github.com/alexisbeaulieu97/canvasgen/internal/tui/editor"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

type editorOptions struct {
	component string
}

func newEditorCmd(flags *rootFlags) *cobra.Command {
	opts := &editorOptions{}

	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Launch the interactive component editor",
		Long: `Launch the interactive editor. Pick a component in the sidebar, edit its
properties in the form, and copy the generated HTML with ctrl+y.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.component, "component", "", "Component to open first (e.g. Buttons, \"Hero Banners\")")

	return cmd
}

func runEditor(cmd *cobra.Command, flags *rootFlags, opts *editorOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("start editor", "", errNotTerminal, "Use `canvasgen render` to generate HTML non-interactively.")
	}

	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	if opts.component != "" {
		cfg.Editor.StartComponent = opts.component
	}
	start, err := canvas.ParseKind(cfg.Editor.StartComponent)
	if err != nil {
		return newCommandError("start editor", "--component", err, "Run `canvasgen list` to see component names.")
	}

	if cfg.Log.File == "" {
		cfg.Log.File = defaultEditorLogPath()
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer log.Close()

	s, err := session.New(store.New(), editorClipboard(log), session.Options{
		Start:       start,
		AckDuration: cfg.Editor.CopyAck,
		Sanitize:    cfg.Output.Sanitize,
		Logger:      log,
	})
	if err != nil {
		return newCommandError("start editor", "creating session", err, "")
	}

	log.WithFields(map[string]any{"component": start.String()}).Info("editor started")
	m := editor.NewModel(s, editor.Options{Debounce: cfg.Editor.Debounce, Logger: log})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "editor exited with error")
		return newCommandError("run editor", "", err, "")
	}
	log.Info("editor closed")
	return nil
}

// editorClipboard prefers the system clipboard and falls back to an
// in-memory one so the copy action never fails outright.
func editorClipboard(log *logger.Logger) session.Clipboard {
	sys := clipboard.System{}
	if sys.Available() {
		return sys
	}
	log.Warn("system clipboard unavailable; copies stay in memory")
	return &clipboard.Memory{}
}

// defaultEditorLogPath keeps editor logs off the terminal the UI owns.
func defaultEditorLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "canvasgen", "editor.log")
}
