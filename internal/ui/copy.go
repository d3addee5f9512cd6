package ui

import "github.com/five82/showroom/internal/state"

// texts is the interface copy for one language.
type texts struct {
	Welcome      string
	Country      string
	Language     string
	Continue     string
	Detecting    string
	DetectedAs   string
	Sections     map[state.Section]string
	Loading      string
	NoModels     string
	Colors       string
	View         string
	Explore      string
	CallUs       string
	PricesIn     string
	BrandTitle   string
	BrandTagline string
	History      string
	HistoryBody  string
	Mission      string
	MissionBody  string
	Stats        [4]string
	FindDealer   string
	Search       string
	NoDealers    string
	Spares       string
	AllParts     string
	NoParts      string
	InStock      string
	SoldOut      string
	Help         string

	QuoteTitle     string
	QuoteStepOf    string
	QuoteSteps     [quoteStepCount]string
	QuoteSelection string
	QuoteContact   string
	QuoteReady     string
}

var copyByLanguage = map[string]texts{
	"es": {
		Welcome:    "BIENVENIDO A SUPER TUCÁN",
		Country:    "PAÍS",
		Language:   "IDIOMA",
		Continue:   "CONTINUAR",
		Detecting:  "Detectando tu país...",
		DetectedAs: "Detectamos",
		Sections: map[state.Section]string{
			state.SectionHero:    "INICIO",
			state.SectionModels:  "MODELOS",
			state.SectionBrand:   "LA MARCA",
			state.SectionDealers: "DEALERS",
			state.SectionParts:   "PARTES",
		},
		Loading:      "Cargando",
		NoModels:     "No hay modelos en esta categoría. PRÓXIMAMENTE",
		Colors:       "Colores",
		View:         "Vista",
		Explore:      "EXPLORA NUESTROS VEHÍCULOS",
		CallUs:       "Llámanos",
		PricesIn:     "Precios en",
		BrandTitle:   "MÁS QUE UNA MARCA",
		BrandTagline: "Somos pasión por la movilidad, innovación en cada detalle y compromiso con quienes eligen la libertad sobre dos ruedas.",
		History:      "NUESTRA HISTORIA",
		HistoryBody:  "Desde nuestros inicios, Super Tucán ha sido sinónimo de calidad, innovación y pasión por las dos ruedas. Hoy somos líderes en el mercado de motocicletas y scooters.",
		Mission:      "NUESTRA MISIÓN",
		MissionBody:  "Proporcionar vehículos de dos ruedas de alta calidad que conecten a las personas con sus sueños.",
		Stats:        [4]string{"Años de Experiencia", "Clientes Satisfechos", "Dealers Autorizados", "Soporte Técnico"},
		FindDealer:   "ENCUENTRA TU DEALER",
		Search:       "Buscar",
		NoDealers:    "Ningún dealer coincide con la búsqueda.",
		Spares:       "REPUESTOS ORIGINALES",
		AllParts:     "TODOS",
		NoParts:      "No hay repuestos en esta categoría.",
		InStock:      "DISPONIBLE",
		SoldOut:      "AGOTADO",
		Help:         "ayuda",

		QuoteTitle:     "COTIZAR VEHÍCULO",
		QuoteStepOf:    "Paso %d de %d",
		QuoteSteps:     [quoteStepCount]string{"Categoría", "Modelo", "Color", "Contacto"},
		QuoteSelection: "TU SELECCIÓN",
		QuoteContact:   "Contáctanos para recibir tu cotización",
		QuoteReady:     "Cotización lista",
	},
	"en": {
		Welcome:    "WELCOME TO SUPER TUCÁN",
		Country:    "COUNTRY",
		Language:   "LANGUAGE",
		Continue:   "CONTINUE",
		Detecting:  "Detecting your country...",
		DetectedAs: "We detected",
		Sections: map[state.Section]string{
			state.SectionHero:    "HOME",
			state.SectionModels:  "MODELS",
			state.SectionBrand:   "THE BRAND",
			state.SectionDealers: "DEALERS",
			state.SectionParts:   "PARTS",
		},
		Loading:      "Loading",
		NoModels:     "No models in this category yet. COMING SOON",
		Colors:       "Colors",
		View:         "View",
		Explore:      "EXPLORE OUR VEHICLES",
		CallUs:       "Call us",
		PricesIn:     "Prices in",
		BrandTitle:   "MORE THAN A BRAND",
		BrandTagline: "We are passion for mobility, innovation in every detail and commitment to those who choose freedom on two wheels.",
		History:      "OUR HISTORY",
		HistoryBody:  "Since our beginnings, Super Tucán has stood for quality, innovation and passion for two wheels. Today we lead the motorcycle and scooter market.",
		Mission:      "OUR MISSION",
		MissionBody:  "To provide high quality two-wheel vehicles that connect people with their dreams.",
		Stats:        [4]string{"Years of Experience", "Happy Customers", "Authorized Dealers", "Technical Support"},
		FindDealer:   "FIND YOUR DEALER",
		Search:       "Search",
		NoDealers:    "No dealer matches the search.",
		Spares:       "GENUINE SPARE PARTS",
		AllParts:     "ALL",
		NoParts:      "No parts in this category.",
		InStock:      "IN STOCK",
		SoldOut:      "SOLD OUT",
		Help:         "help",

		QuoteTitle:     "GET A QUOTE",
		QuoteStepOf:    "Step %d of %d",
		QuoteSteps:     [quoteStepCount]string{"Category", "Model", "Color", "Contact"},
		QuoteSelection: "YOUR SELECTION",
		QuoteContact:   "Contact us to receive your quote",
		QuoteReady:     "Quote ready",
	},
	"pt": {
		Welcome:    "BEM-VINDO À SUPER TUCÁN",
		Country:    "PAÍS",
		Language:   "IDIOMA",
		Continue:   "CONTINUAR",
		Detecting:  "Detectando seu país...",
		DetectedAs: "Detectamos",
		Sections: map[state.Section]string{
			state.SectionHero:    "INÍCIO",
			state.SectionModels:  "MODELOS",
			state.SectionBrand:   "A MARCA",
			state.SectionDealers: "CONCESSIONÁRIAS",
			state.SectionParts:   "PEÇAS",
		},
		Loading:      "Carregando",
		NoModels:     "Nenhum modelo nesta categoria. EM BREVE",
		Colors:       "Cores",
		View:         "Vista",
		Explore:      "EXPLORE NOSSOS VEÍCULOS",
		CallUs:       "Ligue para nós",
		PricesIn:     "Preços em",
		BrandTitle:   "MAIS QUE UMA MARCA",
		BrandTagline: "Somos paixão pela mobilidade, inovação em cada detalhe e compromisso com quem escolhe a liberdade sobre duas rodas.",
		History:      "NOSSA HISTÓRIA",
		HistoryBody:  "Desde o início, a Super Tucán é sinônimo de qualidade, inovação e paixão pelas duas rodas. Hoje somos líderes no mercado de motos e scooters.",
		Mission:      "NOSSA MISSÃO",
		MissionBody:  "Oferecer veículos de duas rodas de alta qualidade que conectem as pessoas aos seus sonhos.",
		Stats:        [4]string{"Anos de Experiência", "Clientes Satisfeitos", "Concessionárias Autorizadas", "Suporte Técnico"},
		FindDealer:   "ENCONTRE SUA CONCESSIONÁRIA",
		Search:       "Buscar",
		NoDealers:    "Nenhuma concessionária corresponde à busca.",
		Spares:       "PEÇAS ORIGINAIS",
		AllParts:     "TODAS",
		NoParts:      "Nenhuma peça nesta categoria.",
		InStock:      "DISPONÍVEL",
		SoldOut:      "ESGOTADO",
		Help:         "ajuda",

		QuoteTitle:     "SOLICITAR COTAÇÃO",
		QuoteStepOf:    "Passo %d de %d",
		QuoteSteps:     [quoteStepCount]string{"Categoria", "Modelo", "Cor", "Contato"},
		QuoteSelection: "SUA SELEÇÃO",
		QuoteContact:   "Fale conosco para receber sua cotação",
		QuoteReady:     "Cotação pronta",
	},
}

var brandStats = [4]string{"15+", "50K+", "100+", "24/7"}

// copyFor returns the copy of a language, defaulting to Spanish.
func copyFor(code string) texts {
	if t, ok := copyByLanguage[code]; ok {
		return t
	}
	return copyByLanguage["es"]
}
