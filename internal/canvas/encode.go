package canvas

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

// Options tunes fragment generation.
type Options struct {
	// Sanitize escapes text and attribute values and neutralises URLs with
	// unexpected schemes. Off by default: the editor emits values verbatim
	// so the fragment matches exactly what the user typed.
	Sanitize bool
}

var safeSchemes = map[string]struct{}{
	"":       {},
	"http":   {},
	"https":  {},
	"mailto": {},
	"tel":    {},
}

var cssURLReplacer = strings.NewReplacer("'", "%27", "\"", "%22", "(", "%28", ")", "%29")

// encoder applies the interpolation policy selected by Options.
type encoder struct {
	sanitize bool
}

func newEncoder(opts Options) encoder {
	return encoder{sanitize: opts.Sanitize}
}

// text prepares user text for element content.
func (e encoder) text(s string) string {
	if !e.sanitize {
		return s
	}
	return html.EscapeString(s)
}

// attr prepares a value for a double-quoted attribute.
func (e encoder) attr(s string) string {
	if !e.sanitize {
		return s
	}
	return html.EscapeString(s)
}

// url prepares a link target or image source.
func (e encoder) url(s string) string {
	if !e.sanitize {
		return s
	}
	if !isSafeURL(s) {
		return "#"
	}
	return html.EscapeString(s)
}

// cssURL prepares a URL embedded in a url('...') style value. The caller
// still passes the whole style through attr.
func (e encoder) cssURL(s string) string {
	if !e.sanitize {
		return s
	}
	if !isSafeURL(s) {
		return ""
	}
	return cssURLReplacer.Replace(s)
}

// style renders a style attribute value.
func (e encoder) style(d *style.Declarations) string {
	return e.attr(d.String())
}

func isSafeURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return false
	}
	_, ok := safeSchemes[strings.ToLower(u.Scheme)]
	return ok
}
