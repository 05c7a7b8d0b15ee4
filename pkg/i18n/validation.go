package i18n

import (
	"fmt"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// ValidationMessage renders a single validation error in lang. The error's
// TranslationValues become placeholders, with "field" taken from the error's
// Field so that prefixed paths such as "segments[1].to" show up in full.
// The original message is used when the key has no translation.
func (t *Translator) ValidationMessage(lang string, err validator.ValidationError) string {
	if err.TranslationKey == "" {
		return err.Message
	}
	params := make(map[string]string, len(err.TranslationValues)+1)
	for k, v := range err.TranslationValues {
		params[k] = fmt.Sprint(v)
	}
	params["field"] = err.Field
	return t.Tm(lang, err.TranslationKey, err.Message, params)
}

// TranslateValidation returns a copy of errs with every message rendered in lang.
func (t *Translator) TranslateValidation(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(errs) == 0 {
		return errs
	}
	out := make(validator.ValidationErrors, len(errs))
	for i, err := range errs {
		err.Message = t.ValidationMessage(lang, err)
		out[i] = err
	}
	return out
}
