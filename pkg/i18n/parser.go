package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into a map keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser matching the file's extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return JSONParser{}
	case "yaml", "yml":
		return YAMLParser{}
	case "toml":
		return TOMLParser{}
	default:
		return nil
	}
}

// YAMLParser reads files of the form
//
//	en:
//	  validation:
//	    required: "%{field} is required"
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return parseWith(ctx, content, yaml.Unmarshal)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	return hasExt(ext, "yaml", "yml")
}

// JSONParser reads the JSON equivalent of the YAML layout.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return parseWith(ctx, content, json.Unmarshal)
}

func (JSONParser) SupportsFileExtension(ext string) bool { return hasExt(ext, "json") }

// TOMLParser reads one table per language.
type TOMLParser struct{}

func (TOMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return parseWith(ctx, content, toml.Unmarshal)
}

func (TOMLParser) SupportsFileExtension(ext string) bool { return hasExt(ext, "toml") }

func parseWith(ctx context.Context, content []byte, unmarshal func([]byte, any) error) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = m
	}
	return result, nil
}

func hasExt(ext string, want ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, w := range want {
		if strings.EqualFold(ext, w) {
			return true
		}
	}
	return false
}
