package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys against loaded translations.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	langs         []string
	matcher       language.Matcher
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a requested one is unavailable.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing translations.
// Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.logMissing = enabled }
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" || m == nil {
			return nil, fmt.Errorf("%w: empty language %q", ErrInvalidStructure, lang)
		}
	}
	t.translations = translations

	t.langs = make([]string, 0, len(translations))
	for lang := range translations {
		t.langs = append(t.langs, lang)
	}
	sort.Strings(t.langs)

	// The matcher falls back to its first tag.
	tags := []language.Tag{language.Make(t.defaultLang)}
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	return append([]string(nil), t.langs...)
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// Match returns the loaded language closest to the BCP 47 tag lang,
// e.g. "de-AT" resolves to "de". Unknown or malformed tags yield the default language.
func (t *Translator) Match(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No || idx == 0 {
		return t.defaultLang
	}
	return t.langs[idx-1]
}

// HasTranslation reports whether key resolves to a string in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from
// args given as name, value pairs:
//
//	tr.T("en", "validation.required", "field", "latitude")
//
// Missing translations return the key itself unless WithFallbackToKey(false)
// is set, in which case the empty string is returned.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return namedSprintf(tmpl, pairs(args))
	}
	if t.fallbackToKey {
		return namedSprintf(key, pairs(args))
	}
	return ""
}

// Td is like T but returns defaultValue when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return namedSprintf(tmpl, pairs(args))
	}
	return namedSprintf(defaultValue, pairs(args))
}

// Tm is like Td with named parameters supplied as a map.
func (t *Translator) Tm(lang, key, defaultValue string, params map[string]string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return namedSprintf(tmpl, params)
	}
	return namedSprintf(defaultValue, params)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	m, found := t.translations[lang]
	if !found {
		t.missing("language not supported", lang, key)
		return "", false
	}
	val, found := getTranslation(m, key)
	if !found {
		t.missing("translation not found", lang, key)
		return "", false
	}
	s, isString := val.(string)
	if !isString {
		t.missing("translation is not a string", lang, key)
		return "", false
	}
	return s, true
}

func (t *Translator) missing(msg, lang, key string) {
	if t.logMissing {
		t.logger.Warn(msg, slog.String("lang", lang), slog.String("key", key))
	}
}

// getTranslation walks m along the dot-separated key.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces "%{name}" placeholders. Unknown names are left in place.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
