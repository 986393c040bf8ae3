package canvas

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
)

func parseFragment(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestRenderSeededDefaults(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()

			out := Render(k, SchemaFor(k).Defaults())
			require.NotEmpty(t, out)
			assert.Contains(t, out, "font-family: Inter, sans-serif;")
			parseFragment(t, out)
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		bag := SchemaFor(k).Defaults()
		assert.Equal(t, Render(k, bag), Render(k, bag), k.String())
	}
}

func TestRenderUndefinedKind(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Render(Kind(99), props.Bag{}))
}

func TestRenderButtonsSeeded(t *testing.T) {
	t.Parallel()

	want := `<a href="#" target="_blank" style="display: inline-block; padding: 0.75rem 1rem; ` +
		`background-color: #4f46e5; color: #ffffff; text-decoration: none; border: 2px solid #4338ca; ` +
		`border-radius: 0.5rem; font-weight: 600; font-size: 1rem; line-height: 1.25; text-align: center; ` +
		`cursor: pointer; white-space: nowrap; font-family: Inter, sans-serif;">Mi Botón</a>`
	assert.Equal(t, want, Render(Buttons, SchemaFor(Buttons).Defaults()))
}

func TestRenderButtonSizes(t *testing.T) {
	t.Parallel()

	small := Render(Buttons, props.Bag{"size": "small"})
	assert.Contains(t, small, "padding: 0.5rem 0.75rem;")
	assert.Contains(t, small, "font-size: 0.875rem;")

	large := Render(Buttons, props.Bag{"size": "large"})
	assert.Contains(t, large, "padding: 1rem 1.5rem;")
	assert.Contains(t, large, "font-size: 1.125rem;")

	unknown := Render(Buttons, props.Bag{"size": "gigantic"})
	assert.Contains(t, unknown, "padding: 0.75rem 1rem;")
}

func TestRenderBadgeSeeded(t *testing.T) {
	t.Parallel()

	want := `<span style="display: inline-block; padding: 0.25em 0.6em; font-size: 75%; font-weight: 700; ` +
		`line-height: 1; text-align: center; white-space: nowrap; vertical-align: baseline; ` +
		`border-radius: 9999px; background-color: #22c55e; color: #ffffff; font-family: Inter, sans-serif; ` +
		`margin-right: 0.5rem; border: 0px solid #22c55e;">Nuevo</span>`
	assert.Equal(t, want, Render(Badges, SchemaFor(Badges).Defaults()))
}

func TestRenderEmptyBagUsesLiteralDefaults(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Render(Alerts, props.Bag{}), "Este es un mensaje de alerta.")
	assert.Contains(t, Render(Buttons, props.Bag{}), "Botón de Acción")
	assert.Contains(t, Render(Card, props.Bag{}), "Leer más")
	assert.Contains(t, Render(HeroBanners, props.Bag{}), "Bienvenido a mi Curso")
	assert.Contains(t, Render(Dropdowns, props.Bag{}), "Menú Desplegable")

	group := parseFragment(t, Render(ButtonGroup, props.Bag{}))
	links := findAll(group, "a")
	require.Len(t, links, 2)
	assert.Equal(t, "Botón 1", textOf(links[0]))
	assert.Equal(t, "Botón 2", textOf(links[1]))
}

func TestRenderProgressClamps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{-50, "0"},
		{0, "0"},
		{50, "50"},
		{100, "100"},
		{150, "100"},
		{33.5, "33.5"},
		{math.NaN(), "0"},
		{math.Copysign(0, -1), "0"},
		{math.Inf(1), "100"},
	}
	for _, tc := range cases {
		out := Render(Progress, props.Bag{"percentage": tc.in, "showText": true})
		assert.Contains(t, out, "width: "+tc.want+"%;", tc.in)
		assert.Contains(t, out, ">"+tc.want+"%</span>", tc.in)
	}
}

func TestRenderProgressHidesText(t *testing.T) {
	t.Parallel()

	out := Render(Progress, props.Bag{"percentage": 40.0, "showText": false})
	assert.NotContains(t, out, "<span")
	assert.Contains(t, out, "width: 40%;")
}

func TestRenderPaginationCurrentPage(t *testing.T) {
	t.Parallel()

	bag := props.Bag{
		"currentPageIndex": 1.0,
		"pages": []props.Item{
			{"text": "1", "link": "#p1"},
			{"text": "2", "link": "#p2"},
			{"text": "3", "link": "#p3"},
		},
	}
	doc := parseFragment(t, Render(Pagination, bag))
	links := findAll(doc, "a")
	require.Len(t, links, 5)

	assert.Equal(t, "#p1", attr(links[0], "href"))
	assert.Equal(t, "«", textOf(links[0]))
	assert.Equal(t, "#p3", attr(links[4], "href"))
	assert.Equal(t, "»", textOf(links[4]))

	var current []*html.Node
	for _, a := range links {
		if hasAttr(a, "aria-current") {
			current = append(current, a)
		}
	}
	require.Len(t, current, 1)
	assert.Equal(t, "2", textOf(current[0]))
	assert.Equal(t, "page", attr(current[0], "aria-current"))
	assert.Contains(t, attr(current[0], "style"), "background-color: #3b82f6;")
}

func TestRenderPaginationEdges(t *testing.T) {
	t.Parallel()

	pages := []props.Item{
		{"text": "1", "link": "#p1"},
		{"text": "2", "link": "#p2"},
	}

	first := findAll(parseFragment(t, Render(Pagination, props.Bag{"pages": pages, "currentPageIndex": 0.0})), "a")
	assert.Equal(t, "#p1", attr(first[0], "href"))
	assert.Equal(t, "#p2", attr(first[len(first)-1], "href"))

	last := findAll(parseFragment(t, Render(Pagination, props.Bag{"pages": pages, "currentPageIndex": 1.0})), "a")
	assert.Equal(t, "#p1", attr(last[0], "href"))
	assert.Equal(t, "#p2", attr(last[len(last)-1], "href"))

	empty := findAll(parseFragment(t, Render(Pagination, props.Bag{"pages": []props.Item{}})), "a")
	require.Len(t, empty, 2)
	assert.Equal(t, "#", attr(empty[0], "href"))
	assert.Equal(t, "#", attr(empty[1], "href"))

	outOfRange := Render(Pagination, props.Bag{"pages": pages, "currentPageIndex": 7.0})
	assert.NotContains(t, outOfRange, "aria-current")

	truncated := Render(Pagination, props.Bag{"pages": pages, "currentPageIndex": 1.9})
	assert.Equal(t, 1, strings.Count(truncated, `aria-current="page"`))
}

func TestRenderButtonGroupCorners(t *testing.T) {
	t.Parallel()

	radii := func(n int) []string {
		buttons := make([]props.Item, n)
		for i := range buttons {
			buttons[i] = props.Item{"text": "b", "link": "#"}
		}
		bag := props.Bag{"buttons": buttons, "borderRadius": "medium", "borderThickness": "medium"}
		var out []string
		for _, a := range findAll(parseFragment(t, Render(ButtonGroup, bag)), "a") {
			out = append(out, attr(a, "style"))
		}
		return out
	}

	one := radii(1)
	require.Len(t, one, 1)
	assert.Contains(t, one[0], "border-radius: 0.5rem;")
	assert.Contains(t, one[0], "border-left-width: 2px;")

	two := radii(2)
	require.Len(t, two, 2)
	assert.Contains(t, two[0], "border-radius: 0.5rem 0 0 0.5rem;")
	assert.Contains(t, two[1], "border-radius: 0 0.5rem 0.5rem 0;")
	assert.Contains(t, two[1], "border-left-width: 0;")

	three := radii(3)
	require.Len(t, three, 3)
	assert.Contains(t, three[1], "border-radius: 0;")
	assert.Contains(t, three[2], "border-radius: 0 0.5rem 0.5rem 0;")
}

func TestRenderAlertAccentBar(t *testing.T) {
	t.Parallel()

	medium := Render(Alerts, props.Bag{"borderThickness": "medium", "borderColor": "#111111"})
	assert.Contains(t, medium, "border-top: 2px solid #111111;")
	assert.Contains(t, medium, "border-left: 8px solid #111111;")

	thick := Render(Alerts, props.Bag{"borderThickness": "thick"})
	assert.Contains(t, thick, "border-left: 16px solid")

	none := Render(Alerts, props.Bag{"borderThickness": "none"})
	assert.Contains(t, none, "border-left: 0px solid")
}

func TestRenderAccordionSeparators(t *testing.T) {
	t.Parallel()

	bag := props.Bag{
		"accordions": []props.Item{
			{"title": "A", "content": "a"},
			{"title": "B", "content": "b"},
			{"title": "C", "content": "c"},
		},
		"borderColor": "#abcdef",
	}
	doc := parseFragment(t, Render(Accordion, bag))
	summaries := findAll(doc, "summary")
	require.Len(t, summaries, 3)
	assert.Contains(t, attr(summaries[0], "style"), "border-bottom: 2px solid #abcdef;")
	assert.Contains(t, attr(summaries[1], "style"), "border-bottom: 2px solid #abcdef;")
	assert.Contains(t, attr(summaries[2], "style"), "border-bottom: none;")
	assert.Len(t, findAll(doc, "details"), 3)
}

func TestRenderEmptyListsAreWellFormed(t *testing.T) {
	t.Parallel()

	cases := map[Kind]string{
		Accordion:      "accordions",
		ButtonGroup:    "buttons",
		CardCollection: "cards",
		Dropdowns:      "items",
		ListGroup:      "items",
		NavBar:         "items",
		Pagination:     "pages",
		Breadcrumbs:    "items",
	}
	for k, key := range cases {
		bag := SchemaFor(k).Defaults().With(key, []props.Item{})
		out := Render(k, bag)
		require.NotEmpty(t, out, k.String())
		parseFragment(t, out)
	}

	assert.NotContains(t, Render(Accordion, props.Bag{"accordions": []props.Item{}}), "<details")
	assert.NotContains(t, Render(ButtonGroup, props.Bag{"buttons": []props.Item{}}), "<a ")
}

func TestRenderListGroupFlush(t *testing.T) {
	t.Parallel()

	items := []props.Item{{"text": "x", "link": "#"}, {"text": "y", "link": "#"}}

	framed := Render(ListGroup, props.Bag{"items": items, "flush": false})
	assert.Contains(t, framed, "border: 1px solid #e5e7eb; border-radius: 0.5rem;")
	assert.Equal(t, 1, strings.Count(framed, "border-bottom:"))

	flush := Render(ListGroup, props.Bag{"items": items, "flush": true})
	assert.Contains(t, flush, "border: none; border-radius: 0;")
	assert.NotContains(t, flush, "border-bottom:")
}

func TestRenderBreadcrumbs(t *testing.T) {
	t.Parallel()

	bag := props.Bag{
		"items": []props.Item{
			{"text": "Inicio", "link": "/"},
			{"text": "Cursos", "link": "/cursos"},
			{"text": "Go", "link": "/cursos/go"},
		},
		"separatorColor": "#999999",
	}
	doc := parseFragment(t, Render(Breadcrumbs, bag))

	nav := findAll(doc, "nav")
	require.Len(t, nav, 1)
	assert.Equal(t, "breadcrumb", attr(nav[0], "aria-label"))

	items := findAll(doc, "li")
	require.Len(t, items, 3)
	assert.Equal(t, "Inicio/", textOf(items[0]))
	assert.Equal(t, "Go", textOf(items[2]))

	links := findAll(doc, "a")
	require.Len(t, links, 2)
	assert.Equal(t, "/cursos", attr(links[1], "href"))
	assert.Empty(t, findAll(items[2], "a"))
}

func TestRenderNavBarAlignment(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Render(NavBar, props.Bag{"alignment": "right"}), "gap: 1.5rem; margin-left: auto;")
	assert.Contains(t, Render(NavBar, props.Bag{"alignment": "center"}), "gap: 1.5rem; margin: 0 auto;")
	assert.NotContains(t, Render(NavBar, props.Bag{"alignment": "left"}), "auto")
}

func TestRenderCardCollectionOverrides(t *testing.T) {
	t.Parallel()

	bag := props.Bag{
		"titleColor": "#010101",
		"cards": []props.Item{
			{"title": "Uno", "titleColor": "#ff0000"},
			{"title": "Dos"},
		},
	}
	doc := parseFragment(t, Render(CardCollection, bag))
	titles := findAll(doc, "h3")
	require.Len(t, titles, 2)
	assert.Equal(t, "Uno", textOf(titles[0]))
	assert.Contains(t, attr(titles[0], "style"), "color: #ff0000;")
	assert.Contains(t, attr(titles[1], "style"), "color: #010101;")

	for _, div := range findAll(doc, "div") {
		s := attr(div, "style")
		if strings.Contains(s, "max-width: 320px;") {
			assert.NotContains(t, s, "margin-bottom")
		}
	}
}

func TestRenderCardImage(t *testing.T) {
	t.Parallel()

	withImage := parseFragment(t, Render(Card, props.Bag{"imageSrc": "https://example.com/a.png"}))
	imgs := findAll(withImage, "img")
	require.Len(t, imgs, 1)
	assert.Equal(t, "https://example.com/a.png", attr(imgs[0], "src"))

	without := Render(Card, props.Bag{"imageSrc": ""})
	assert.NotContains(t, without, "<img")
	assert.Contains(t, without, "margin-bottom: 1rem;")
}

func TestRenderHeroOverlayOpacity(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Render(HeroBanners, props.Bag{"overlayOpacity": 0.25}), "opacity: 0.25;")
	assert.Contains(t, Render(HeroBanners, props.Bag{"overlayOpacity": 3.0}), "opacity: 1;")
	assert.Contains(t, Render(HeroBanners, props.Bag{"overlayOpacity": -1.0}), "opacity: 0;")
	assert.Contains(t, Render(HeroBanners, props.Bag{"overlayOpacity": math.NaN()}), "opacity: 0;")
	assert.Contains(t, Render(HeroBanners, props.Bag{"overlayOpacity": math.Copysign(0, -1)}), "opacity: 0;")
	assert.Contains(t, Render(HeroBanners, props.Bag{}), "background-image: url('https://placehold.co/1200x400/334155/ffffff?text=Banner');")
}

func TestRenderBorderFallbacks(t *testing.T) {
	t.Parallel()

	bogus := props.Bag{"borderThickness": "bogus", "borderRadius": "bogus"}

	assert.Contains(t, Render(Pagination, bogus), "border: 1px solid #e5e7eb; border-radius: 0.25rem;")
	assert.Contains(t, Render(Buttons, bogus), "border: 2px solid #4f46e5; border-radius: 0.375rem;")
	assert.Contains(t, Render(Badges, bogus), "border-radius: 9999px;")
	assert.Contains(t, Render(Progress, bogus), "border-radius: 0.5rem;")
}

func TestRenderCollapseToggle(t *testing.T) {
	t.Parallel()

	doc := parseFragment(t, Render(Collapse, props.Bag{"title": "Ver"}))
	details := findAll(doc, "details")
	require.Len(t, details, 1)
	assert.Contains(t, attr(details[0], "ontoggle"), "rotate(90deg)")
	assert.Contains(t, textOf(details[0]), "Ver")
}

func TestRenderDropdownItems(t *testing.T) {
	t.Parallel()

	bag := props.Bag{"items": []props.Item{{"text": "Uno", "link": "/1"}, {"text": "Dos", "link": "/2"}}}
	links := findAll(parseFragment(t, Render(Dropdowns, bag)), "a")
	require.Len(t, links, 2)
	assert.Equal(t, "/2", attr(links[1], "href"))
	assert.Equal(t, "_blank", attr(links[1], "target"))
}

func TestRenderVerbatimByDefault(t *testing.T) {
	t.Parallel()

	out := Render(Buttons, props.Bag{"text": "<b>hi</b>", "link": "javascript:alert(1)"})
	assert.Contains(t, out, ">"+"<b>hi</b>"+"</a>")
	assert.Contains(t, out, `href="javascript:alert(1)"`)
}

func TestRenderSanitized(t *testing.T) {
	t.Parallel()

	opts := Options{Sanitize: true}

	out := RenderWith(Buttons, props.Bag{"text": "<b>hi</b>", "link": "javascript:alert(1)"}, opts)
	assert.Contains(t, out, "&lt;b&gt;hi&lt;/b&gt;")
	assert.Contains(t, out, `href="#"`)

	safe := RenderWith(Buttons, props.Bag{"link": "https://example.com/?a=1&b=2"}, opts)
	assert.Contains(t, safe, `href="https://example.com/?a=1&amp;b=2"`)

	quoted := RenderWith(Alerts, props.Bag{"bgColor": `red" onclick="x`}, opts)
	assert.NotContains(t, quoted, `" onclick="`)

	hero := RenderWith(HeroBanners, props.Bag{"imageSrc": "javascript:alert(1)"}, opts)
	assert.Contains(t, hero, "background-image: url(&#39;&#39;);")

	links := findAll(parseFragment(t, RenderWith(Breadcrumbs, props.Bag{
		"items": []props.Item{{"text": "x", "link": "vbscript:foo"}, {"text": "y", "link": "#"}},
	}, opts)), "a")
	require.Len(t, links, 1)
	assert.Equal(t, "#", attr(links[0], "href"))
}
