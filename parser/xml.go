package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// readXML reads a BPMN 2.0 XML document into a BPMN JSON tree.
//
// Namespace prefixes and declarations are removed. Attributes and child elements become properties.
// Repeated child elements become an array, an element without attributes and children becomes its text.
// The text of any other element is kept as #text property.
func readXML(r io.Reader) (map[string]any, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("XML is empty")
	}
	if root.Tag != "definitions" {
		return nil, errors.New("no definitions found")
	}

	return map[string]any{root.Tag: xmlValue(root)}, nil
}

func xmlValue(e *etree.Element) any {
	text := strings.TrimSpace(e.Text())

	var attrs []etree.Attr
	for _, attr := range e.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			continue
		}
		attrs = append(attrs, attr)
	}

	children := e.ChildElements()
	if len(attrs) == 0 && len(children) == 0 {
		return text
	}

	properties := make(map[string]any, len(attrs)+len(children))
	for _, attr := range attrs {
		properties[attr.Key] = attr.Value
	}

	for _, child := range children {
		value := xmlValue(child)

		existing, ok := properties[child.Tag]
		if !ok {
			properties[child.Tag] = value
		} else if values, ok := existing.([]any); ok {
			properties[child.Tag] = append(values, value)
		} else {
			properties[child.Tag] = []any{existing, value}
		}
	}

	if text != "" {
		properties["#text"] = text
	}

	return properties
}
