package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/clipboard"
	"github.com/alexisbeaulieu97/canvasgen/internal/config"
	"github.com/alexisbeaulieu97/canvasgen/internal/logger"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/store"
	"github.com/alexisbeaulieu97/canvasgen/internal/watch"
	"github.com/alexisbeaulieu97/canvasgen/pkg/diff"
)

var (
	errListFromFlag = errors.New("list properties cannot be set with --set")
	errOutOfDate    = errors.New("file does not match the rendered component")
)

type renderOptions struct {
	propsPath string
	sets      []string
	sanitize  bool
	copy      bool
	watch     bool
	outPath   string
	check     bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render KIND",
		Short: "Print the HTML of a component",
		Long: `Render a component to standard output. Properties start from the
component defaults, then the --props file, then each --set in order.`,
		Example: `  canvasgen render Buttons --set text=Enviar --set size=large
  canvasgen render "Hero Banners" --props hero.yaml --watch
  canvasgen render NavBar --props nav.yaml --out nav.html --check`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := make([]string, 0, len(canvas.Kinds()))
			for _, k := range canvas.Kinds() {
				names = append(names, k.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.propsPath, "props", "p", "", "YAML file of property values")
	cmd.Flags().StringArrayVarP(&opts.sets, "set", "s", nil, "Set a property (key=value); repeatable")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Escape text and neutralise unsafe links")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the HTML to the clipboard")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-render whenever the --props file changes")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the HTML to a file instead of standard output")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare the --out file with the rendered HTML without writing it")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, name string) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}

	kind, err := canvas.ParseKind(name)
	if err != nil {
		return newCommandError("render", name, err, "Run `canvasgen list` to see component names.")
	}
	if opts.watch && opts.propsPath == "" {
		return newCommandError("render", "--watch", errors.New("--watch requires --props"), "Pass the file to watch with --props.")
	}
	if opts.check && opts.outPath == "" {
		return newCommandError("render", "--check", errors.New("--check requires --out"), "Pass the file to compare with --out.")
	}
	if opts.check && opts.watch {
		return newCommandError("render", "--check", errors.New("--check cannot be combined with --watch"), "")
	}

	log, err := newLogger(cfg, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		return err
	}
	defer log.Close()
	log = log.WithFields(map[string]any{"component": kind.String()})

	r := &renderer{
		kind:   kind,
		opts:   opts,
		encode: canvas.Options{Sanitize: opts.sanitize || cfg.Output.Sanitize},
		out:    cmd.OutOrStdout(),
		log:    log,
	}

	if err := r.once(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	err = watch.File(cmd.Context(), opts.propsPath, watch.DefaultDelay, log, func() {
		if err := r.once(); err != nil {
			log.Error(err, "re-render failed")
		}
	})
	if err != nil {
		return newCommandError("watch", opts.propsPath, err, "Check the directory exists and is readable.")
	}
	return nil
}

// renderer builds and prints one component. once may run from the watcher
// goroutine, so output is serialised.
type renderer struct {
	kind   canvas.Kind
	opts   *renderOptions
	encode canvas.Options
	out    io.Writer
	log    *logger.Logger

	mu sync.Mutex
}

func (r *renderer) once() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bag, err := buildBag(r.kind, r.opts.propsPath, r.opts.sets)
	if err != nil {
		return err
	}

	html := canvas.RenderWith(r.kind, bag, r.encode)
	r.log.WithFields(map[string]any{"bytes": len(html)}).Debug("rendered")

	switch {
	case r.opts.check:
		return r.compare(html)
	case r.opts.outPath != "":
		if err := r.writeFile(html); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintln(r.out, html); err != nil {
			return newCommandError("render", "writing output", err, "")
		}
	}

	if r.opts.copy {
		if err := (clipboard.System{}).WriteAll(html); err != nil {
			return newCommandError("copy", "", err, "Install xclip, xsel or wl-copy, or pipe the output instead.")
		}
		r.log.Info("copied to clipboard")
	}
	return nil
}

// compare prints a diff between the --out file and html and fails when
// they differ. A missing file compares as empty.
func (r *renderer) compare(html string) error {
	current, err := os.ReadFile(r.opts.outPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newCommandError("check", r.opts.outPath, err, "")
	}

	d := diff.Unified(fragmentLines(string(current)), fragmentLines(html), r.opts.outPath, "rendered "+r.kind.String())
	if d == "" {
		fmt.Fprintf(r.out, "%s is up to date\n", r.opts.outPath)
		return nil
	}
	fmt.Fprint(r.out, d)
	return newCommandError("check", r.opts.outPath, errOutOfDate, "Run without --check to update the file.")
}

// writeFile replaces the --out file when its content changed.
func (r *renderer) writeFile(html string) error {
	content := html + "\n"
	current, err := os.ReadFile(r.opts.outPath)
	if err == nil && string(current) == content {
		r.log.Debug("output unchanged")
		return nil
	}
	if err := os.WriteFile(r.opts.outPath, []byte(content), 0o644); err != nil {
		return newCommandError("write output", r.opts.outPath, err, "Check the directory exists and is writable.")
	}
	r.log.WithFields(map[string]any{"path": r.opts.outPath}).Info("wrote component")
	return nil
}

// fragmentLines puts each tag and each text run on its own line so a diff
// of two fragments points at what changed.
func fragmentLines(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(html); i++ {
		c := html[i]
		if c == '<' && i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(c)
		if c == '>' && i+1 < len(html) && html[i+1] != '<' {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// buildBag layers the props file and --set values over the defaults of k.
func buildBag(k canvas.Kind, propsPath string, sets []string) (props.Bag, error) {
	st := store.New()

	if propsPath != "" {
		values, err := config.ParseProps(propsPath)
		if err != nil {
			return nil, newCommandError("read properties", propsPath, err, "Check the YAML syntax.")
		}
		if err := st.Overlay(k, values); err != nil {
			return nil, newCommandError("apply properties", propsPath, err, "Run `canvasgen list --fields` to see valid keys.")
		}
	}

	schema := canvas.SchemaFor(k)
	for _, set := range sets {
		key, raw, ok := strings.Cut(set, "=")
		if !ok {
			return nil, newCommandError("parse --set", set, errors.New("expected key=value"), "")
		}
		key = strings.TrimSpace(key)
		field, ok := schema.Field(key)
		if !ok {
			return nil, newCommandError("parse --set", set, fmt.Errorf("unknown property %q for %s", key, k), "Run `canvasgen list --fields` to see valid keys.")
		}
		if field.Control == canvas.ControlList {
			return nil, newCommandError("parse --set", set, errListFromFlag, "Put list values in a --props file.")
		}
		value, err := props.ParseValue(field.Type(), raw)
		if err != nil {
			return nil, newCommandError("parse --set", set, err, "")
		}
		if err := st.Set(k, key, value); err != nil {
			return nil, newCommandError("parse --set", set, err, "")
		}
	}

	return st.Bag(k), nil
}
