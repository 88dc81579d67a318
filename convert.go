package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one markup element converted for display. The style pair is
// resolved once here; the renderer never consults the style table.
type Node struct {
	Label    string
	Category string
	Fill     string
	Stroke   string
	Children []*Node
}

// labelDelimiter separates a tag name from its trimmed text content.
const labelDelimiter = ": "

// xmlElement mirrors the markup structure. The ",any" rule keeps
// children in document order.
type xmlElement struct {
	XMLName  xml.Name
	Text     string       `xml:",chardata"`
	Children []xmlElement `xml:",any"`
}

// parseTree parses one tagged markup document into a Node tree. The
// returned error carries the parser's diagnostic for malformed input;
// an empty document is reported as having no root element.
func parseTree(data []byte) (*Node, error) {
	var root xmlElement
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("document has no root element")
		}
		return nil, fmt.Errorf("malformed document: %w", err)
	}
	return convertElement(root), nil
}

// convertElement converts one element and, recursively, its children.
// The label is the tag name, extended with the element's trimmed text
// when present. The category is the lowercased tag name; unknown tags
// still convert and simply pick up the default style.
func convertElement(el xmlElement) *Node {
	label := el.XMLName.Local
	if text := strings.TrimSpace(el.Text); text != "" {
		label += labelDelimiter + text
	}
	category := strings.ToLower(el.XMLName.Local)
	fill, stroke := resolveStyle(category)

	n := &Node{
		Label:    label,
		Category: category,
		Fill:     fill,
		Stroke:   stroke,
	}
	for _, child := range el.Children {
		n.Children = append(n.Children, convertElement(child))
	}
	return n
}

// countNodes returns the number of nodes in the tree rooted at n.
func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += countNodes(child)
	}
	return total
}
