package locale

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	phonePrefixPattern = regexp.MustCompile(`^\+[0-9]{1,4}$`)
	currencyPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Validate checks that a country record is complete. Records loaded from a
// persisted snapshot are validated before they are trusted.
func (c Country) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Code, validation.Required),
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Phone, validation.Required, validation.Match(phonePrefixPattern)),
		validation.Field(&c.Currency, validation.Required, validation.Match(currencyPattern)),
		validation.Field(&c.Language, validation.Required, validation.By(knownLanguage)),
	)
}

// Validate checks that a language record names an offered language.
func (l Language) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Code, validation.Required, validation.By(knownLanguage)),
		validation.Field(&l.Name, validation.Required),
	)
}

func knownLanguage(value any) error {
	code, _ := value.(string)
	if _, ok := LanguageByCode(code); !ok {
		return validation.NewError("locale.language_unknown", "unknown language code")
	}
	return nil
}
