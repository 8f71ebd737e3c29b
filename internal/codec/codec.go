// Package codec converts between document text and transfer records.
// Decoding is all-or-nothing: any syntax or shape error is reported as
// ErrMalformedDocument and nothing is returned.
package codec

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedDocument is returned when a document cannot be decoded.
var ErrMalformedDocument = errors.New("malformed document")

// DecodeXML decodes a single root element from doc into v.  Only
// whitespace, comments, processing instructions and directives may
// surround the root element.
func DecodeXML(doc string, v any) error {
	dec := xml.NewDecoder(strings.NewReader(doc))
	start, err := rootElement(dec)
	if err != nil {
		return err
	}
	if err := dec.DecodeElement(v, &start); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: trailing text after root element", ErrMalformedDocument)
			}
		case xml.StartElement:
			return fmt.Errorf("%w: unexpected element <%s> after root", ErrMalformedDocument, t.Name.Local)
		}
	}
}

// rootElement advances dec to the first start element.
func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, fmt.Errorf("%w: no root element", ErrMalformedDocument)
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return xml.StartElement{}, fmt.Errorf("%w: text before root element", ErrMalformedDocument)
			}
		case xml.EndElement:
			return xml.StartElement{}, fmt.Errorf("%w: unexpected </%s>", ErrMalformedDocument, t.Name.Local)
		}
	}
}

// DecodeJSON decodes exactly one JSON value from doc into v.  A literal
// null is rejected, as is anything but whitespace after the value.
func DecodeJSON(doc string, v any) error {
	dec := json.NewDecoder(strings.NewReader(doc))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON value", ErrMalformedDocument)
	}
	if bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("%w: null document", ErrMalformedDocument)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return nil
}

// EncodeJSONIndent renders v as two-space indented JSON without HTML
// escaping and without a trailing newline.
func EncodeJSONIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// EncodeXMLIndent renders v with the standard XML header and two-space
// indentation.  No namespace declarations are emitted unless v declares
// them.
func EncodeXMLIndent(v any) (string, error) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode xml: %w", err)
	}
	return xml.Header + string(out), nil
}
