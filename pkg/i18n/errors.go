package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("i18n: adapter is nil")
	ErrLoadingCancelled    = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadFile    = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile   = errors.New("i18n: failed to parse translation file")
	ErrFailedToReadDir     = errors.New("i18n: failed to read translation directory")
	ErrNoTranslationFiles  = errors.New("i18n: no translation files found")
	ErrInvalidStructure    = errors.New("i18n: invalid translation structure")
	ErrLanguageUnsupported = errors.New("i18n: language not supported")
)
