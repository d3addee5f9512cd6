// Package catalog holds the motorcycle lineup shown in the hero and models
// sections.
package catalog

import "strings"

// DefaultCategoryID is the category shown when the models section opens.
const DefaultCategoryID = "motocicleta"

// Color is one paint option for a model.
type Color struct {
	Name  string
	Value string
	Hex   string
}

// Model is a motorcycle in the lineup.
type Model struct {
	ID       string
	Name     string
	Featured bool
	Colors   []Color
}

// Category groups models for the models section tabs.
type Category struct {
	ID          string
	Name        string
	Icon        string
	Description string
	ModelIDs    []string
}

// Angle selects which product shot the hero shows.
type Angle int

const (
	AngleMain Angle = iota
	AngleFront
)

func (a Angle) String() string {
	if a == AngleFront {
		return "front"
	}
	return "main"
}

// Next toggles between the available angles.
func (a Angle) Next() Angle {
	if a == AngleFront {
		return AngleMain
	}
	return AngleFront
}

var swatches = map[string]Color{
	"azul":   {Name: "Azul", Value: "azul", Hex: "#3B82F6"},
	"blanco": {Name: "Blanco", Value: "blanco", Hex: "#FFFFFF"},
	"blanca": {Name: "Blanca", Value: "blanca", Hex: "#FFFFFF"},
	"negro":  {Name: "Negro", Value: "negro", Hex: "#1F2937"},
	"negra":  {Name: "Negra", Value: "negra", Hex: "#1F2937"},
	"rojo":   {Name: "Rojo", Value: "rojo", Hex: "#EF4444"},
	"roja":   {Name: "Roja", Value: "roja", Hex: "#EF4444"},
}

var models = []Model{
	{ID: "adri-sport", Name: "ADRI SPORT", Featured: true, Colors: colorsOf("azul", "blanca", "negra", "roja")},
	{ID: "bws", Name: "BWS", Colors: colorsOf("azul", "blanco")},
	{ID: "cg200", Name: "CG200", Colors: colorsOf("rojo")},
	{ID: "st-125", Name: "ST 125", Colors: colorsOf("azul", "negro", "rojo")},
}

var categories = []Category{
	{ID: "motocicleta", Name: "MOTOCICLETA", Icon: "🏍️", Description: "Potencia y versatilidad para todo terreno", ModelIDs: []string{"adri-sport", "cg200"}},
	{ID: "passola", Name: "PASSOLA", Icon: "🛵", Description: "Ideal para la ciudad y uso urbano", ModelIDs: []string{"bws"}},
	{ID: "atv", Name: "ATV", Icon: "🏎️", Description: "Aventura y diversión off-road"},
	{ID: "sport", Name: "SPORT", Icon: "🏁", Description: "Velocidad y rendimiento deportivo", ModelIDs: []string{"st-125"}},
}

func colorsOf(values ...string) []Color {
	out := make([]Color, 0, len(values))
	for _, v := range values {
		c, ok := swatches[v]
		if !ok {
			c = Color{Name: v, Value: v, Hex: "#6B7280"}
		}
		out = append(out, c)
	}
	return out
}

// Categories returns the model categories in tab order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category.
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ModelByID looks up a model.
func ModelByID(id string) (Model, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// ModelsIn returns the models of a category. Unknown categories have no
// models.
func ModelsIn(categoryID string) []Model {
	cat, ok := CategoryByID(strings.TrimSpace(categoryID))
	if !ok {
		return nil
	}
	out := make([]Model, 0, len(cat.ModelIDs))
	for _, id := range cat.ModelIDs {
		if m, ok := ModelByID(id); ok {
			out = append(out, m)
		}
	}
	return out
}

// Featured returns the models promoted in the hero, falling back to the whole
// lineup when none is flagged.
func Featured() []Model {
	var out []Model
	for _, m := range models {
		if m.Featured {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		out = append(out, models...)
	}
	return out
}

// Lineup returns every model.
func Lineup() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// NextCategory returns the category after id, wrapping around. Unknown ids
// restart at the first category.
func NextCategory(id string) string {
	return stepCategory(id, 1)
}

// PrevCategory returns the category before id, wrapping around.
func PrevCategory(id string) string {
	return stepCategory(id, -1)
}

func stepCategory(id string, delta int) string {
	n := len(categories)
	for i, c := range categories {
		if c.ID == id {
			return categories[((i+delta)%n+n)%n].ID
		}
	}
	return categories[0].ID
}

// ImagePath returns the asset path of a model shot, mirroring the site's
// asset layout. ADRI SPORT in white only ships a front shot.
func ImagePath(m Model, color string, angle Angle) string {
	file := "main.avif"
	if angle == AngleFront || (m.ID == "adri-sport" && color == "blanca") {
		file = "front.avif"
	}
	return "assets/bikes/" + m.Name + "/" + color + "/" + file
}
