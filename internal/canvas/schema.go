package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

// Control names the edit control a field is presented with.
type Control int

const (
	ControlText Control = iota
	ControlTextArea
	ControlNumber
	ControlColor
	ControlChoice
	ControlToggle
	ControlThickness
	ControlRadius
	ControlList
)

var controlNames = [...]string{
	ControlText:      "text",
	ControlTextArea:  "textarea",
	ControlNumber:    "number",
	ControlColor:     "color",
	ControlChoice:    "choice",
	ControlToggle:    "toggle",
	ControlThickness: "thickness",
	ControlRadius:    "radius",
	ControlList:      "list",
}

func (c Control) String() string {
	if c < 0 || int(c) >= len(controlNames) {
		return "unknown"
	}
	return controlNames[c]
}

// Field describes one editable property of a component kind.
type Field struct {
	Key     string
	Label   string
	Control Control
	// Options lists the accepted values of a ControlChoice field.
	Options []string
	// ItemFields lists the per-item fields of a ControlList field.
	ItemFields []string
	// NewItem is the template appended by "add item" on a ControlList field.
	NewItem props.Item
}

// Type returns the value type stored for the field.
func (f Field) Type() props.Type {
	switch f.Control {
	case ControlNumber:
		return props.TypeNumber
	case ControlToggle:
		return props.TypeBool
	case ControlList:
		return props.TypeList
	default:
		return props.TypeString
	}
}

// Schema is the static description of a kind: its fields in form order,
// whether it exposes border styling, and its seeded property bag.
type Schema struct {
	Kind           Kind
	Fields         []Field
	SupportsBorder bool
	defaults       props.Bag
}

// Field looks a field up by key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns a fresh copy of the seeded property bag.
func (s Schema) Defaults() props.Bag {
	return s.defaults.Clone()
}

// ListFields returns the ControlList fields of the schema.
func (s Schema) ListFields() []Field {
	var lists []Field
	for _, f := range s.Fields {
		if f.Control == ControlList {
			lists = append(lists, f)
		}
	}
	return lists
}

// NewItem returns the template item for listKey, or nil when listKey is not
// a list field.
func (s Schema) NewItem(listKey string) props.Item {
	f, ok := s.Field(listKey)
	if !ok || f.Control != ControlList {
		return nil
	}
	return f.NewItem.Clone()
}

// SchemaFor returns the schema of k. It panics on an undefined kind since
// the set is closed.
func SchemaFor(k Kind) Schema {
	if !k.Valid() {
		panic("canvas: undefined kind " + k.String())
	}
	return schemas[k]
}

// Label derives a human label from a camel-case key: "bgColor" -> "Bg Color".
func Label(key string) string {
	words := splitWords(key)
	if words == "" {
		return ""
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

const (
	placeholderCardImage   = "https://placehold.co/400x200/e0e0e0/000000?text=Imagen"
	placeholderNewCard     = "https://placehold.co/400x200/cccccc/000000?text=Nueva"
	placeholderBannerImage = "https://placehold.co/1200x400/334155/ffffff?text=Banner"
)

var (
	linkItemFields = []string{"text", "link"}
	newLinkItem    = props.Item{"text": "Nuevo", "link": "#"}
)

func textField(key, label string) Field {
	return Field{Key: key, Label: labelOr(key, label), Control: ControlText}
}

func textAreaField(key, label string) Field {
	return Field{Key: key, Label: labelOr(key, label), Control: ControlTextArea}
}

func numberField(key, label string) Field {
	return Field{Key: key, Label: labelOr(key, label), Control: ControlNumber}
}

func colorField(key, label string) Field {
	return Field{Key: key, Label: labelOr(key, label), Control: ControlColor}
}

func choiceField(key, label string, options ...string) Field {
	return Field{Key: key, Label: labelOr(key, label), Control: ControlChoice, Options: options}
}

func toggleField(key, label string) Field {
	return Field{Key: key, Label: labelOr(key, label), Control: ControlToggle}
}

func listField(key string, newItem props.Item, fields ...string) Field {
	return Field{Key: key, Label: Label(key), Control: ControlList, ItemFields: fields, NewItem: newItem}
}

func linkListField(key string) Field {
	return listField(key, newLinkItem, linkItemFields...)
}

func labelOr(key, label string) string {
	if label != "" {
		return label
	}
	return Label(key)
}

func borderFields() []Field {
	return []Field{
		{Key: "borderThickness", Label: "Grosor del Borde", Control: ControlThickness},
		{Key: "borderRadius", Label: "Redondeado del Borde", Control: ControlRadius},
	}
}

// define assembles a schema; border fields are placed before any list
// field so the item editor always comes last in the form.
func define(k Kind, border bool, defaults props.Bag, fields ...Field) Schema {
	var head, tail []Field
	for _, f := range fields {
		if f.Control == ControlList {
			tail = append(tail, f)
			continue
		}
		head = append(head, f)
	}
	all := append([]Field(nil), head...)
	if border {
		all = append(all, borderFields()...)
	}
	all = append(all, tail...)
	return Schema{Kind: k, Fields: all, SupportsBorder: border, defaults: defaults}
}

var schemas = map[Kind]Schema{
	Accordion: define(Accordion, true,
		props.Bag{
			"accordions": []props.Item{
				{"title": "Acordeón de Ejemplo 1", "content": "Aquí va el contenido detallado."},
				{"title": "Acordeón 2", "content": "Contenido del segundo."},
			},
			"bgColor": "#f3f4f6", "titleColor": "#1f2937", "textColor": "#374151", "borderColor": "#d1d5db", "contentBgColor": "#ffffff",
			"borderThickness": style.ThicknessMedium, "borderRadius": style.RadiusMedium,
		},
		colorField("bgColor", "Fondo de Título"),
		colorField("titleColor", "Color de Título"),
		colorField("contentBgColor", "Fondo de Contenido"),
		colorField("textColor", "Color de Texto"),
		colorField("borderColor", ""),
		listField("accordions", props.Item{"title": "Nuevo Acordeón", "content": "Contenido nuevo."}, "title", "content"),
	),
	Alerts: define(Alerts, true,
		props.Bag{
			"message": "¡Atención! Este es un mensaje informativo.",
			"bgColor": "#3b82f6", "textColor": "#ffffff", "borderColor": "#2563eb",
			"borderThickness": style.ThicknessMedium, "borderRadius": style.RadiusMedium,
		},
		textAreaField("message", ""),
		colorField("bgColor", ""),
		colorField("textColor", ""),
		colorField("borderColor", ""),
	),
	Buttons: define(Buttons, true,
		props.Bag{
			"text": "Mi Botón", "link": "#", "size": "medium",
			"bgColor": "#4f46e5", "textColor": "#ffffff", "borderColor": "#4338ca",
			"borderThickness": style.ThicknessMedium, "borderRadius": style.RadiusMedium,
		},
		textField("text", "Texto del Botón"),
		textField("link", ""),
		choiceField("size", "", "small", "medium", "large"),
		colorField("bgColor", ""),
		colorField("textColor", ""),
		colorField("borderColor", ""),
	),
	ButtonGroup: define(ButtonGroup, true,
		props.Bag{
			"buttons": []props.Item{
				{"text": "Opción A", "link": "#"},
				{"text": "Opción B", "link": "#"},
			},
			"bgColor": "#6b7280", "textColor": "#ffffff", "borderColor": "#4b5563",
			"borderThickness": style.ThicknessMedium, "borderRadius": style.RadiusMedium,
		},
		colorField("bgColor", ""),
		colorField("textColor", ""),
		colorField("borderColor", ""),
		linkListField("buttons"),
	),
	Card: define(Card, true,
		props.Bag{
			"title": "Título de la Tarjeta", "text": "Descripción breve de la tarjeta.", "imageSrc": placeholderCardImage,
			"link": "#", "linkText": "Ver Detalles",
			"bgColor": "#ffffff", "titleColor": "#1e293b", "textColor": "#475569", "linkColor": "#3b82f6", "borderColor": "#e2e8f0",
			"borderThickness": style.ThicknessThin, "borderRadius": style.RadiusLarge,
		},
		textField("title", ""),
		textAreaField("text", ""),
		textField("imageSrc", "URL de Imagen"),
		textField("link", ""),
		textField("linkText", ""),
		colorField("bgColor", ""),
		colorField("titleColor", ""),
		colorField("textColor", ""),
		colorField("linkColor", ""),
		colorField("borderColor", ""),
	),
	CardCollection: define(CardCollection, true,
		props.Bag{
			"cards": []props.Item{
				{"title": "Curso A", "text": "Desarrollo web.", "imageSrc": "https://placehold.co/400x200/a78bfa/ffffff?text=Web"},
				{"title": "Curso B", "text": "Programación.", "imageSrc": "https://placehold.co/400x200/2dd4bf/ffffff?text=Program"},
			},
			"bgColor": "#ffffff", "titleColor": "#1e293b", "textColor": "#475569", "linkColor": "#3b82f6", "borderColor": "#e2e8f0",
			"borderThickness": style.ThicknessThin, "borderRadius": style.RadiusLarge,
		},
		colorField("bgColor", "Fondo de Tarjeta"),
		colorField("titleColor", "Color de Título"),
		colorField("textColor", "Color de Texto"),
		colorField("linkColor", "Color de Enlace"),
		colorField("borderColor", "Color de Borde"),
		listField("cards",
			props.Item{"title": "Nueva Tarjeta", "text": "Nuevo", "link": "#", "imageSrc": placeholderNewCard},
			"title", "text", "imageSrc", "link", "linkText"),
	),
	Collapse: define(Collapse, true,
		props.Bag{
			"title": "Mostrar/Ocultar Contenido", "content": "Este texto se puede mostrar u ocultar.",
			"linkColor": "#3b82f6", "bgColor": "#f8fafc", "textColor": "#334155", "borderColor": "#e2e8f0",
			"borderThickness": style.ThicknessThin, "borderRadius": style.RadiusMedium,
		},
		textField("title", "Texto del Activador"),
		textAreaField("content", "Contenido Oculto"),
		colorField("linkColor", ""),
		colorField("bgColor", ""),
		colorField("textColor", ""),
		colorField("borderColor", ""),
	),
	Dropdowns: define(Dropdowns, true,
		props.Bag{
			"title": "Menú Principal",
			"items": []props.Item{
				{"text": "Sección 1", "link": "#"},
				{"text": "Sección 2", "link": "#"},
			},
			"bgColor": "#4f46e5", "textColor": "#ffffff", "borderColor": "#d1d5db", "contentBgColor": "#ffffff", "contentTextColor": "#374151",
			"borderThickness": style.ThicknessThin, "borderRadius": style.RadiusMedium,
		},
		textField("title", ""),
		colorField("bgColor", "Fondo del Botón"),
		colorField("textColor", "Texto del Botón"),
		colorField("contentBgColor", "Fondo del Menú"),
		colorField("contentTextColor", "Texto del Menú"),
		colorField("borderColor", ""),
		linkListField("items"),
	),
	ListGroup: define(ListGroup, true,
		props.Bag{
			"items": []props.Item{
				{"text": "Tema 1", "link": "#"},
				{"text": "Tema 2", "link": "#"},
			},
			"flush":   false,
			"bgColor": "#ffffff", "textColor": "#374151", "borderColor": "#e5e7eb",
			"borderThickness": style.ThicknessThin, "borderRadius": style.RadiusMedium,
		},
		toggleField("flush", "Sin bordes (flush)"),
		colorField("bgColor", ""),
		colorField("textColor", ""),
		colorField("borderColor", ""),
		linkListField("items"),
	),
	NavBar: define(NavBar, true,
		props.Bag{
			"brand": "Nombre del Curso",
			"items": []props.Item{
				{"text": "Módulos", "link": "#"},
				{"text": "Tareas", "link": "#"},
			},
			"alignment": "left",
			"bgColor":   "#1f2937", "textColor": "#ffffff", "linkColor": "#93c5fd",
			"borderThickness": style.ThicknessNone, "borderRadius": style.RadiusNone,
		},
		textField("brand", ""),
		choiceField("alignment", "", "left", "center", "right"),
		colorField("bgColor", ""),
		colorField("textColor", "Color de Marca"),
		colorField("linkColor", ""),
		linkListField("items"),
	),
	HeroBanners: define(HeroBanners, true,
		props.Bag{
			"title": "Bienvenido al Semestre", "subtitle": "¡Explora y aprende!", "buttonText": "Ver Agenda", "buttonLink": "#",
			"imageSrc": placeholderBannerImage, "overlayColor": "#000000", "overlayOpacity": 0.5,
			"titleColor": "#ffffff", "textColor": "#e5e7eb", "buttonBgColor": "#4f46e5", "buttonTextColor": "#ffffff",
			"borderThickness": style.ThicknessNone, "borderRadius": style.RadiusNone,
		},
		textField("title", ""),
		textAreaField("subtitle", ""),
		textField("buttonText", ""),
		textField("buttonLink", ""),
		textField("imageSrc", ""),
		colorField("overlayColor", ""),
		numberField("overlayOpacity", ""),
		colorField("titleColor", ""),
		colorField("textColor", ""),
		colorField("buttonBgColor", ""),
		colorField("buttonTextColor", ""),
	),
	Pagination: define(Pagination, true,
		props.Bag{
			"currentPageIndex": 0.0,
			"pages": []props.Item{
				{"text": "1", "link": "#p1"},
				{"text": "2", "link": "#p2"},
			},
			"bgColor": "#ffffff", "textColor": "#6b7280", "linkColor": "#3b82f6",
			"activeBgColor": "#3b82f6", "activeTextColor": "#ffffff", "borderColor": "#e5e7eb",
			"borderThickness": style.ThicknessThin, "borderRadius": style.RadiusMedium,
		},
		numberField("currentPageIndex", "Índice Página Activa"),
		colorField("bgColor", "Fondo"),
		colorField("textColor", "Texto (Nav)"),
		colorField("linkColor", ""),
		colorField("activeBgColor", "Fondo Activo"),
		colorField("activeTextColor", "Texto Activo"),
		colorField("borderColor", ""),
		linkListField("pages"),
	),
	Progress: define(Progress, true,
		props.Bag{
			"percentage": 75.0, "showText": true,
			"bgColor": "#3b82f6", "containerBgColor": "#e5e7eb", "textColor": "#ffffff",
			"borderThickness": style.ThicknessNone, "borderRadius": style.RadiusFull,
		},
		numberField("percentage", ""),
		toggleField("showText", "Mostrar texto"),
		colorField("bgColor", "Color de Barra"),
		colorField("containerBgColor", "Fondo de Contenedor"),
		colorField("textColor", ""),
	),
	Breadcrumbs: define(Breadcrumbs, true,
		props.Bag{
			"items": []props.Item{
				{"text": "Inicio", "link": "#"},
				{"text": "Cursos", "link": "#"},
			},
			"textColor": "#4b5563", "linkColor": "#3b82f6", "separatorColor": "#d1d5db",
			"borderThickness": style.ThicknessNone, "borderRadius": style.RadiusNone,
		},
		colorField("textColor", "Texto (Actual)"),
		colorField("linkColor", ""),
		colorField("separatorColor", ""),
		linkListField("items"),
	),
	Badges: define(Badges, true,
		props.Bag{
			"text":    "Nuevo",
			"bgColor": "#22c55e", "textColor": "#ffffff",
			"borderThickness": style.ThicknessNone, "borderRadius": style.RadiusFull,
		},
		textField("text", ""),
		colorField("bgColor", ""),
		colorField("textColor", ""),
	),
}
