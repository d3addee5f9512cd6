package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Country is a market the brand sells in.
type Country struct {
	Code     string `toml:"code"`
	Name     string `toml:"name"`
	Flag     string `toml:"flag"`
	Phone    string `toml:"phone"`
	Currency string `toml:"currency"`
	Language string `toml:"language"`
}

// Language is a UI language offered by the selection gate.
type Language struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
	Flag string `toml:"flag"`
}

const (
	// HomeCountryCode is the brand's home market, used when detection fails.
	HomeCountryCode = "dominican_republic"
	// OtherCountryCode is the catch-all entry for unsupported markets.
	OtherCountryCode = "other"
	// DefaultLanguageCode is selected until the user picks another language.
	DefaultLanguageCode = "es"
)

var countries = []Country{
	{Code: "dominican_republic", Name: "República Dominicana", Flag: "🇩🇴", Phone: "+1", Currency: "DOP", Language: "es"},
	{Code: "panama", Name: "Panamá", Flag: "🇵🇦", Phone: "+507", Currency: "PAB", Language: "es"},
	{Code: "colombia", Name: "Colombia", Flag: "🇨🇴", Phone: "+57", Currency: "COP", Language: "es"},
	{Code: "mexico", Name: "México", Flag: "🇲🇽", Phone: "+52", Currency: "MXN", Language: "es"},
	{Code: "guatemala", Name: "Guatemala", Flag: "🇬🇹", Phone: "+502", Currency: "GTQ", Language: "es"},
	{Code: "costa_rica", Name: "Costa Rica", Flag: "🇨🇷", Phone: "+506", Currency: "CRC", Language: "es"},
	{Code: "honduras", Name: "Honduras", Flag: "🇭🇳", Phone: "+504", Currency: "HNL", Language: "es"},
	{Code: "nicaragua", Name: "Nicaragua", Flag: "🇳🇮", Phone: "+505", Currency: "NIO", Language: "es"},
	{Code: "el_salvador", Name: "El Salvador", Flag: "🇸🇻", Phone: "+503", Currency: "USD", Language: "es"},
	{Code: "ecuador", Name: "Ecuador", Flag: "🇪🇨", Phone: "+593", Currency: "USD", Language: "es"},
	{Code: "peru", Name: "Perú", Flag: "🇵🇪", Phone: "+51", Currency: "PEN", Language: "es"},
	{Code: "bolivia", Name: "Bolivia", Flag: "🇧🇴", Phone: "+591", Currency: "BOB", Language: "es"},
	{Code: "other", Name: "Otro País", Flag: "🌎", Phone: "+1", Currency: "USD", Language: "es"},
}

var languages = []Language{
	{Code: "es", Name: "Español", Flag: "🇪🇸"},
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "pt", Name: "Português", Flag: "🇧🇷"},
}

// isoToCountry is the allow-list of ISO 3166-1 alpha-2 codes we sell in.
var isoToCountry = map[string]string{
	"DO": "dominican_republic",
	"PA": "panama",
	"CO": "colombia",
	"MX": "mexico",
	"GT": "guatemala",
	"CR": "costa_rica",
	"HN": "honduras",
	"NI": "nicaragua",
	"SV": "el_salvador",
	"EC": "ecuador",
	"PE": "peru",
	"BO": "bolivia",
}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.Portuguese,
})

// Countries returns the selectable countries in display order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// Languages returns the selectable languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// CountryCodes returns every country code, including the catch-all entry.
func CountryCodes() []string {
	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		codes = append(codes, c.Code)
	}
	return codes
}

// CountryByCode looks up a country by its internal code.
func CountryByCode(code string) (Country, bool) {
	code = strings.TrimSpace(code)
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CountryForISO maps an ISO alpha-2 code through the allow-list. The second
// return is false when the code is not a supported market.
func CountryForISO(iso string) (Country, bool) {
	code, ok := isoToCountry[strings.ToUpper(strings.TrimSpace(iso))]
	if !ok {
		return Country{}, false
	}
	return CountryByCode(code)
}

// LanguageByCode looks up a language by code.
func LanguageByCode(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// DefaultLanguage returns the language selected before any user choice.
func DefaultLanguage() Language {
	l, _ := LanguageByCode(DefaultLanguageCode)
	return l
}

// MatchLanguage picks the closest offered language for a POSIX locale
// string such as "pt_BR.UTF-8". Unparseable or empty input yields the
// default language.
func MatchLanguage(posix string) Language {
	tag := strings.TrimSpace(posix)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || tag == "C" || tag == "POSIX" {
		return DefaultLanguage()
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage()
	}
	_, idx, confidence := languageMatcher.Match(parsed)
	if confidence == language.No {
		return DefaultLanguage()
	}
	return languages[idx]
}
