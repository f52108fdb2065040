// Package input loads integer datasets from files, standard input and
// command-line strings.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/tally/pkg/sink"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

// Sentinel errors.
var (
	ErrTooLarge      = errors.New("input exceeds size limit")
	ErrUnknownFormat = errors.New("unknown input format")
	ErrSchema        = errors.New("input does not match dataset schema")
	ErrParse         = errors.New("malformed input")
)

// StdinPath selects standard input in Load.
const StdinPath = "-"

// valuesKey names the dataset field in object-shaped JSON and YAML documents.
const valuesKey = "values"

// Format is a dataset encoding.
type Format string

// Dataset encodings.
const (
	// FormatAuto picks the encoding from the file extension, then the content.
	FormatAuto Format = ""
	// FormatJSON is a JSON array of numbers or an object with a "values" array.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence of numbers or a mapping with a "values" sequence.
	FormatYAML Format = "yaml"
	// FormatText is numbers separated by whitespace or commas.
	FormatText Format = "text"
)

// datasetSchema describes the accepted JSON shapes. Element-level checks
// (integral, non-negative) are left to tally.Coerce.
const datasetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "definitions": {
    "values": {"type": "array", "items": {"type": "number"}}
  },
  "oneOf": [
    {"$ref": "#/definitions/values"},
    {
      "type": "object",
      "required": ["values"],
      "properties": {"values": {"$ref": "#/definitions/values"}}
    }
  ]
}`

// Options controls dataset loading.
type Options struct {
	// Format forces an encoding. FormatAuto detects it.
	Format Format
	// MaxSize bounds the number of bytes read. Zero means unlimited.
	MaxSize uint64
	// SchemaCheck validates JSON documents against the dataset schema.
	SchemaCheck bool
}

// ParseFormat resolves a format name; "" and "auto" yield FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Load reads a dataset from path, or from standard input when path is "-".
// Files ending in sink.CompressedExt are decompressed, and the extension
// before it selects the format.
func Load(path string, opts Options) ([]int, error) {
	if path == StdinPath {
		return Read(os.Stdin, opts)
	}

	rc, err := sink.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}
	defer rc.Close()

	if opts.Format == FormatAuto {
		opts.Format = formatFromExtension(strings.TrimSuffix(path, sink.CompressedExt))
	}

	return Read(rc, opts)
}

// Read decodes a dataset from r.
func Read(r io.Reader, opts Options) ([]int, error) {
	data, err := readLimited(r, opts.MaxSize)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == FormatAuto {
		format = sniffFormat(data)
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data, opts.SchemaCheck)
	case FormatYAML:
		return decodeYAML(data)
	case FormatText, FormatAuto:
		return ParseValues(string(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ParseValues parses numbers separated by whitespace or commas.
func ParseValues(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	raw := make([]any, len(fields))

	for i, field := range fields {
		raw[i] = parseToken(field)
	}

	return tally.Coerce(raw)
}

// parseToken returns the token as an int64 or float64 when it parses as
// one, and as the original string otherwise so that Coerce rejects it.
func parseToken(token string) any {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}

	return token
}

func readLimited(r io.Reader, maxSize uint64) ([]byte, error) {
	if maxSize == 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}

		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(min(maxSize, uint64(1<<62)))+1))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if uint64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: more than %s", ErrTooLarge, humanize.Bytes(maxSize))
	}

	return data, nil
}

func formatFromExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatText
	default:
		return FormatAuto
	}
}

func sniffFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) == 0:
		return FormatText
	case trimmed[0] == '[' || trimmed[0] == '{':
		return FormatJSON
	case bytes.HasPrefix(trimmed, []byte("- ")) || bytes.Contains(trimmed, []byte(":")):
		return FormatYAML
	default:
		return FormatText
	}
}

func decodeJSON(data []byte, schemaCheck bool) ([]int, error) {
	var doc any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	err := dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrParse, err)
	}

	// A dataset is exactly one JSON document.
	trailingErr := dec.Decode(&struct{}{})
	if !errors.Is(trailingErr, io.EOF) {
		return nil, fmt.Errorf("%w: json: trailing data after offset %d", ErrParse, dec.InputOffset())
	}

	if schemaCheck {
		schemaErr := validateSchema(doc)
		if schemaErr != nil {
			return nil, schemaErr
		}
	}

	return coerceDocument(doc)
}

func validateSchema(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(datasetSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))

	for _, verr := range result.Errors() {
		details = append(details, verr.Field()+": "+verr.Description())
	}

	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; "))
}

func decodeYAML(data []byte) ([]int, error) {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}

	return coerceDocument(doc)
}

// coerceDocument accepts a bare list or an object with a "values" list.
func coerceDocument(doc any) ([]int, error) {
	switch v := doc.(type) {
	case []any:
		return tally.Coerce(v)
	case map[string]any:
		list, ok := v[valuesKey].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a list", ErrParse, valuesKey)
		}

		return tally.Coerce(list)
	case nil:
		return tally.Coerce(nil)
	default:
		return nil, fmt.Errorf("%w: expected a list of numbers, got %T", ErrParse, doc)
	}
}
