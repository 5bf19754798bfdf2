package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/ports"
)

// FileLoader reads YAML configuration documents from disk.
type FileLoader struct{}

// NewFileLoader builds a new loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load implements ports.DocumentLoader. An empty file yields an empty
// document.
func (l *FileLoader) Load(_ context.Context, path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigLoad, path, err)
	}
	return Decode(data, path)
}

// Decode parses raw YAML into a Document. source is only used in errors.
func Decode(data []byte, source string) (domain.Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigLoad, source, err)
	}
	if raw == nil {
		return domain.Document{}, nil
	}
	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: top level must be a mapping, got %T", domain.ErrConfigLoad, source, raw)
	}
	return domain.Document(doc), nil
}

// Encode renders a Document as YAML. Floats keep a fractional part or an
// exponent so Decode reads them back as floats.
func Encode(doc domain.Document) ([]byte, error) {
	return yaml.Marshal(tagFloats(map[string]any(doc)))
}

type floatScalar float64

func (f floatScalar) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(float64(f))}, nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func tagFloats(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = tagFloats(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = tagFloats(item)
		}
		return out
	case float64:
		return floatScalar(val)
	case float32:
		return floatScalar(val)
	default:
		return v
	}
}

// normalize converts mappings with non-string keys into map[string]any so
// the rest of the code only deals with one mapping type.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

var _ ports.DocumentLoader = (*FileLoader)(nil)
