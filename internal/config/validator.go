package config

import (
	"fmt"
	"reflect"
	"strings"

	english "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// newValidator builds a validator whose messages use the mapstructure tag
// names, so validation errors read like the YAML keys users actually wrote.
func newValidator() (*validator.Validate, ut.Translator, error) {
	locale := english.New()
	translator, found := ut.New(locale, locale).GetTranslator("en")
	if !found {
		return nil, nil, fmt.Errorf("english translator is not registered")
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(yamlFieldName)
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, nil, fmt.Errorf("failed to register translations: %w", err)
	}
	return validate, translator, nil
}

func yamlFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	if name == "-" {
		return ""
	}
	return name
}
