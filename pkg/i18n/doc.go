// Package i18n translates message keys loaded from YAML, JSON or TOML catalogs.
//
// A catalog maps language codes to nested tables; keys are addressed with dots
// and templates use named "%{name}" placeholders:
//
//	en:
//	  validation:
//	    range: "%{field} must be between %{min} and %{max}"
//
// Catalogs are loaded through a TranslationAdapter. FSAdapter reads every
// matching file from an fs.FS, so an embed.FS, os.DirFS or fstest.MapFS all work:
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.YAMLParser{}, locales, "locales"))
//	msg := tr.T(tr.Match("de-AT"), "validation.range", "field", "latitude", "min", "-90", "max", "90")
//
// TranslateValidation renders validator.ValidationErrors through their
// TranslationKey and TranslationValues, falling back to the original message
// when a key is missing.
package i18n
