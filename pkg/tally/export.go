package tally

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

const (
	csvHeader   = "Number,Count\n"
	jsonIndent  = "  "
	xmlIndent   = "  "
	csvQuote    = `"`
	csvEscQuote = `""`
)

// Document is the structure every export format is produced from.
type Document struct {
	Counts     []NamedCount `json:"counts"     yaml:"counts"`
	Statistics Statistics   `json:"statistics" yaml:"statistics"`
}

// Payload is the result of an export.
type Payload struct {
	Format   Format
	Document Document
	// Data holds the serialized document. It is nil for FormatArray.
	Data []byte
}

// Export renders the current counts and statistics in the requested format.
// An unknown format fails with *UnsupportedFormatError before anything is
// computed.
func (e *Engine) Export(format string) (Payload, error) {
	parsed, err := ParseFormat(format)
	if err != nil {
		return Payload{}, err
	}

	doc := e.document()

	data, err := Encode(parsed, doc)
	if err != nil {
		return Payload{}, err
	}

	return Payload{Format: parsed, Document: doc, Data: data}, nil
}

func (e *Engine) document() Document {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Document{
		Counts:     NameCounts(e.counts()),
		Statistics: e.statistics().clone(),
	}
}

// Encode serializes doc. FormatArray yields nil data.
func Encode(format Format, doc Document) ([]byte, error) {
	switch format {
	case FormatArray:
		return nil, nil
	case FormatJSON:
		return encodeJSON(doc)
	case FormatXML:
		return encodeXML(doc)
	case FormatCSV:
		return encodeCSV(doc), nil
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
}

// orderedCounts marshals as a JSON object keyed by display name, preserving
// ascending value order.
type orderedCounts []NamedCount

func (o orderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, nc := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(nc.Name)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(nc.Count))
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

type jsonDocument struct {
	Counts     orderedCounts `json:"counts"`
	Statistics Statistics    `json:"statistics"`
}

func encodeJSON(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(jsonDocument{
		Counts:     orderedCounts(doc.Counts),
		Statistics: doc.Statistics,
	}, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	return append(data, '\n'), nil
}

type xmlItem struct {
	Name  string `xml:"name,attr"`
	Count int    `xml:"count,attr"`
}

type xmlStatistics struct {
	TotalElements int     `xml:"total_elements"`
	UniqueValues  int     `xml:"unique_values"`
	Entropy       float64 `xml:"entropy"`
}

type xmlDocument struct {
	XMLName    xml.Name      `xml:"frequency_analysis"`
	Items      []xmlItem     `xml:"counts>item"`
	Statistics xmlStatistics `xml:"statistics"`
}

func encodeXML(doc Document) ([]byte, error) {
	out := xmlDocument{
		Items: make([]xmlItem, len(doc.Counts)),
		Statistics: xmlStatistics{
			TotalElements: doc.Statistics.TotalElements,
			UniqueValues:  doc.Statistics.UniqueValues,
			Entropy:       doc.Statistics.Entropy,
		},
	}

	for i, nc := range doc.Counts {
		out.Items[i] = xmlItem{Name: nc.Name, Count: nc.Count}
	}

	body, err := xml.MarshalIndent(out, "", xmlIndent)
	if err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}

	data := make([]byte, 0, len(xml.Header)+len(body)+1)
	data = append(data, xml.Header...)
	data = append(data, body...)

	return append(data, '\n'), nil
}

func encodeCSV(doc Document) []byte {
	var sb strings.Builder

	sb.WriteString(csvHeader)

	for _, nc := range doc.Counts {
		sb.WriteString(csvQuote)
		sb.WriteString(strings.ReplaceAll(nc.Name, csvQuote, csvEscQuote))
		sb.WriteString(csvQuote)
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(nc.Count))
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}
