package tally

import "strings"

// Format is an export encoding.
type Format string

// Export formats.
const (
	// FormatArray returns the document as a Go value without serialization.
	FormatArray Format = "array"
	// FormatJSON serializes counts and statistics as indented JSON.
	FormatJSON Format = "json"
	// FormatXML serializes counts and scalar statistics as XML.
	FormatXML Format = "xml"
	// FormatCSV serializes counts only, one row per value.
	FormatCSV Format = "csv"
)

// Formats returns every supported export format.
func Formats() []Format {
	return []Format{FormatArray, FormatJSON, FormatXML, FormatCSV}
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves a case-insensitive format token.
func ParseFormat(token string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(token)))

	switch format {
	case FormatArray, FormatJSON, FormatXML, FormatCSV:
		return format, nil
	default:
		return "", &UnsupportedFormatError{Format: token}
	}
}

// FormatNames returns the supported format tokens as strings.
func FormatNames() []string {
	formats := Formats()
	names := make([]string, len(formats))

	for i, f := range formats {
		names[i] = f.String()
	}

	return names
}
