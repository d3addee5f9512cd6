package catalog

import "strings"

// Dealer is an authorized point of sale.
type Dealer struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Hours    string
	Services []string
	Featured bool
}

var dealers = []Dealer{
	{
		Name:     "Super Tucán Central",
		Address:  "Av. Principal 123, Santo Domingo",
		Phone:    "+1 809-123-4567",
		Email:    "central@supertucan.com",
		Hours:    "Lun-Vie: 8:00-18:00, Sáb: 8:00-16:00",
		Services: []string{"Ventas", "Servicio Técnico", "Repuestos"},
		Featured: true,
	},
	{
		Name:     "Moto Center Norte",
		Address:  "Calle Comercial 456, Santiago",
		Phone:    "+1 809-234-5678",
		Email:    "norte@supertucan.com",
		Hours:    "Lun-Sáb: 9:00-17:00",
		Services: []string{"Ventas", "Repuestos"},
	},
	{
		Name:     "Dealer Este",
		Address:  "Zona Oriental 789, La Romana",
		Phone:    "+1 809-345-6789",
		Email:    "este@supertucan.com",
		Hours:    "Lun-Vie: 8:30-17:30",
		Services: []string{"Ventas", "Servicio Técnico"},
	},
	{
		Name:     "Moto Sur",
		Address:  "Av. Sur 321, Barahona",
		Phone:    "+1 809-456-7890",
		Email:    "sur@supertucan.com",
		Hours:    "Lun-Vie: 9:00-17:00",
		Services: []string{"Ventas"},
	},
}

// SearchDealers returns the dealers whose name or address contains term,
// ignoring case. An empty term matches every dealer.
func SearchDealers(term string) []Dealer {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Dealer, 0, len(dealers))
	for _, d := range dealers {
		if term == "" ||
			strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Address), term) {
			out = append(out, d)
		}
	}
	return out
}
