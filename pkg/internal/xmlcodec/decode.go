package xmlcodec

import (
	"encoding/xml"
	"io"
	"strings"
)

// DecodeDocument parses a response body into a generic tree.
//
// An <api> root is unwrapped: its direct children become the document's
// top-level entries, and a duplicated top-level tag keeps the first
// occurrence. Any other root decodes as its own children. Attributes are
// ignored throughout; the API carries everything in elements.
func DecodeDocument(r io.Reader) (Map, error) {
	dec := xml.NewDecoder(r)

	root, err := nextStartElement(dec)
	if err != nil {
		return nil, err
	}

	if root.Name.Local == "api" {
		doc := Map{}
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				child, err := decodeElement(dec)
				if err != nil {
					return nil, err
				}
				if _, ok := doc[t.Name.Local]; !ok {
					doc[t.Name.Local] = child
				}
			case xml.EndElement:
				return doc, nil
			}
		}
	}

	node, err := decodeElement(dec)
	if err != nil {
		return nil, err
	}
	if m, ok := node.(Map); ok {
		return m, nil
	}
	// A childless root has no mapping to return; keep its text reachable
	// under the root's own tag.
	return Map{root.Name.Local: node}, nil
}

func nextStartElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

// decodeElement consumes tokens up to the matching EndElement and returns the
// subtree: a trimmed string for a leaf, otherwise a Map with repeated child
// tags grouped into a List in document order. Text mixed between child
// elements is dropped.
func decodeElement(dec *xml.Decoder) (Node, error) {
	var text strings.Builder
	groups := map[string][]Node{}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec)
			if err != nil {
				return nil, err
			}
			groups[t.Name.Local] = append(groups[t.Name.Local], child)
		case xml.EndElement:
			if len(groups) == 0 {
				return strings.TrimSpace(text.String()), nil
			}
			out := make(Map, len(groups))
			for tag, nodes := range groups {
				if len(nodes) == 1 {
					out[tag] = nodes[0]
				} else {
					out[tag] = List(nodes)
				}
			}
			return out, nil
		case xml.CharData:
			text.Write(t)
		}
	}
}
