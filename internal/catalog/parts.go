package catalog

// AllPartsID selects every part category.
const AllPartsID = "todos"

// PartCategory groups spare parts.
type PartCategory struct {
	ID   string
	Name string
	Icon string
}

// Part is a spare part listed in the parts section.
type Part struct {
	Name     string
	Category string
	Fits     string
	Price    float64 // USD
	InStock  bool
}

var partCategories = []PartCategory{
	{ID: "motor", Name: "Motor", Icon: "⚙️"},
	{ID: "carroceria", Name: "Carrocería", Icon: "🏍️"},
	{ID: "electrico", Name: "Sistema Eléctrico", Icon: "⚡"},
	{ID: "frenos", Name: "Frenos", Icon: "🛑"},
	{ID: "suspension", Name: "Suspensión", Icon: "🔧"},
	{ID: "accesorios", Name: "Accesorios", Icon: "🎒"},
}

var parts = []Part{
	{Name: "Filtro de Aceite Original", Category: "motor", Fits: "ADRI SPORT / BWS / CG200", Price: 25.99, InStock: true},
	{Name: "Pastillas de Freno Delanteras", Category: "frenos", Fits: "ADRI SPORT", Price: 45.99, InStock: true},
	{Name: "Carenado Lateral Izquierdo", Category: "carroceria", Fits: "BWS", Price: 89.99},
	{Name: "Bombillo LED H4", Category: "electrico", Fits: "Universal", Price: 15.99, InStock: true},
}

// PartCategories returns the part categories in tab order, without the
// catch-all entry.
func PartCategories() []PartCategory {
	out := make([]PartCategory, len(partCategories))
	copy(out, partCategories)
	return out
}

// PartsIn returns the parts of a category. AllPartsID returns every part.
func PartsIn(categoryID string) []Part {
	var out []Part
	for _, p := range parts {
		if categoryID == AllPartsID || p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// NextPartCategory cycles through AllPartsID and the part categories.
func NextPartCategory(id string) string {
	ids := make([]string, 0, len(partCategories)+1)
	ids = append(ids, AllPartsID)
	for _, c := range partCategories {
		ids = append(ids, c.ID)
	}
	for i, v := range ids {
		if v == id {
			return ids[(i+1)%len(ids)]
		}
	}
	return AllPartsID
}

// PartCategoryName returns the display name of a part category.
func PartCategoryName(id string) string {
	for _, c := range partCategories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
