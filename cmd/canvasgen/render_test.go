package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "render", "Badges")
	require.NoError(t, err)

	want := canvas.Render(canvas.Badges, canvas.SchemaFor(canvas.Badges).Defaults())
	assert.Equal(t, want+"\n", out)
}

func TestRenderAcceptsDisplayName(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "render", "hero banners")
	require.NoError(t, err)
	assert.Contains(t, out, "<h2")
}

func TestRenderSetOverrides(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "render", "Buttons", "--set", "text=Enviar", "--set", "size=large", "-s", "link=https://example.com")
	require.NoError(t, err)

	assert.Contains(t, out, ">Enviar</a>")
	assert.Contains(t, out, "padding: 1rem 1.5rem")
	assert.Contains(t, out, `href="https://example.com"`)
}

func TestRenderSetParsesTypes(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "render", "Progress", "--set", "percentage=40", "--set", "showText=false")
	require.NoError(t, err)

	assert.Contains(t, out, "width: 40%")
	assert.NotContains(t, out, "40%</")
}

func TestRenderPropsFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "nav.yaml", `brand: Historia
items:
  - {text: Lecturas, link: /lecturas}
  - {text: Foro, link: /foro}
`)

	out, err := execute(t, "render", "NavBar", "--props", path, "--set", "brand=Historia II")
	require.NoError(t, err)

	assert.Contains(t, out, "Historia II")
	assert.Contains(t, out, "Lecturas")
	assert.Contains(t, out, `href="/foro"`)
	assert.NotContains(t, out, "Módulos")
}

func TestRenderSanitize(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "render", "Badges", "--set", "text=<b>Hola</b>")
	require.NoError(t, err)
	assert.Contains(t, out, "<b>Hola</b>")

	out, err = execute(t, "render", "Badges", "--sanitize", "--set", "text=<b>Hola</b>")
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;b&gt;Hola&lt;/b&gt;")
}

func TestRenderSanitizeFromConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, "canvasgen.yaml", "output:\n  sanitize: true\n")

	out, err := execute(t, "render", "Badges", "--config", cfgPath, "--set", "text=<i>x</i>")
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;i&gt;x&lt;/i&gt;")
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	badProps := writeFile(t, "bad.yaml", "text: [unclosed\n")
	unknownKey := writeFile(t, "unknown.yaml", "nope: 1\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown kind", args: []string{"render", "Carousel"}, wantErr: "Failed to render: Carousel"},
		{name: "missing kind", args: []string{"render"}, wantErr: "accepts 1 arg"},
		{name: "set without equals", args: []string{"render", "Buttons", "--set", "text"}, wantErr: "expected key=value"},
		{name: "unknown set key", args: []string{"render", "Buttons", "--set", "nope=1"}, wantErr: `unknown property "nope"`},
		{name: "bad number", args: []string{"render", "Progress", "--set", "percentage=abc"}, wantErr: "parse number"},
		{name: "bad bool", args: []string{"render", "Progress", "--set", "showText=maybe"}, wantErr: "parse bool"},
		{name: "list from flag", args: []string{"render", "NavBar", "--set", "items=x"}, wantErr: errListFromFlag.Error()},
		{name: "missing props file", args: []string{"render", "Buttons", "--props", filepath.Join(t.TempDir(), "none.yaml")}, wantErr: "Failed to read properties"},
		{name: "invalid props yaml", args: []string{"render", "Buttons", "--props", badProps}, wantErr: "Failed to read properties"},
		{name: "unknown props key", args: []string{"render", "Buttons", "--props", unknownKey}, wantErr: "Failed to apply properties"},
		{name: "watch without props", args: []string{"render", "Buttons", "--watch"}, wantErr: "--watch requires --props"},
		{name: "bad log level", args: []string{"render", "Buttons", "--log-level", "loud"}, wantErr: "Failed to load configuration"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildBagLayering(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "button.yaml", "text: Desde archivo\nbgColor: '#000000'\n")

	bag, err := buildBag(canvas.Buttons, path, []string{"text=Desde flag"})
	require.NoError(t, err)

	assert.Equal(t, "Desde flag", bag.String("text", ""))
	assert.Equal(t, "#000000", bag.String("bgColor", ""))
	assert.Equal(t, "medium", bag.String("size", ""))
}

func TestBuildBagKeepsEqualsInValue(t *testing.T) {
	t.Parallel()

	bag, err := buildBag(canvas.Buttons, "", []string{"link=/buscar?q=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "/buscar?q=a=b", bag.String("link", ""))
}

func TestBuildBagListErrorIsTyped(t *testing.T) {
	t.Parallel()

	_, err := buildBag(canvas.Breadcrumbs, "", []string{"items=a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errListFromFlag))
}

// syncBuffer lets the watcher goroutine and the test share output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRenderWatchRerendersOnChange(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "badge.yaml", "text: Primero\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := newRootCmd()
	out := &syncBuffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "Badges", "--props", path, "--watch"})

	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Primero")
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("text: Segundo\n"), 0o644)
		return strings.Contains(out.String(), "Segundo")
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("render --watch did not stop after cancel")
	}
}

func TestRenderOutWritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "badge.html")

	out, err := execute(t, "render", "Badges", "--out", path, "--set", "text=Hola")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ">Hola</span>")
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestRenderCheck(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "badge.html")
	_, err := execute(t, "render", "Badges", "--out", path, "--set", "text=Hola")
	require.NoError(t, err)

	out, err := execute(t, "render", "Badges", "--out", path, "--check", "--set", "text=Hola")
	require.NoError(t, err)
	assert.Equal(t, path+" is up to date\n", out)

	out, err = execute(t, "render", "Badges", "--out", path, "--check", "--set", "text=Adiós")
	require.Error(t, err)
	assert.ErrorIs(t, err, errOutOfDate)
	assert.Contains(t, out, "--- "+path)
	assert.Contains(t, out, "+++ rendered Badges")
	assert.Contains(t, out, "\n-Hola\n+Adiós\n")

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(before), "Hola", "--check must not write")
}

func TestRenderCheckMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "none.html")
	out, err := execute(t, "render", "Alerts", "--out", path, "--check")
	require.ErrorIs(t, err, errOutOfDate)
	assert.Contains(t, out, "@@ -1,0 ")
	assert.NoFileExists(t, path)
}

func TestRenderCheckFlagRules(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "render", "Badges", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--check requires --out")

	props := writeFile(t, "p.yaml", "text: a\n")
	_, err = execute(t, "render", "Badges", "--props", props, "--watch", "--out", "x.html", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestFragmentLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<div>\n<p>\na\n</p>\n</div>\n", fragmentLines("<div><p>a</p></div>"))
	assert.Empty(t, fragmentLines("  "))
}
