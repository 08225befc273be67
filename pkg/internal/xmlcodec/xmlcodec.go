// Package xmlcodec implements the wFirma XML wire format: request envelope
// builders and a generic tree decoder for responses.
//
// The API encloses every payload in an <api> envelope. Requests nest a module
// element (e.g. <invoices>) that carries either a record, a parameter list, or
// a find query. Responses decode into a generic Map tree because record shapes
// vary by module and by the fields requested.
package xmlcodec

// Node is one decoded XML value: a trimmed string leaf, a Map, or a List.
type Node = interface{}

// Map holds the child elements of one XML element, keyed by tag name.
// A tag that occurs once maps to its Node; a repeated tag maps to a List.
type Map map[string]Node

// List holds the values of a repeated tag in document order.
type List []Node

// Get walks nested maps along path and returns the node found there.
func (m Map) Get(path ...string) (Node, bool) {
	var current Node = m
	for _, key := range path {
		sub, ok := current.(Map)
		if !ok {
			return nil, false
		}
		current, ok = sub[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Text returns the string leaf at path, or "" when the path is absent or
// does not end in a leaf.
func (m Map) Text(path ...string) string {
	node, ok := m.Get(path...)
	if !ok {
		return ""
	}
	s, ok := node.(string)
	if !ok {
		return ""
	}
	return s
}

// Section returns the nested map at path, or nil when the path is absent or
// does not end in a map.
func (m Map) Section(path ...string) Map {
	node, ok := m.Get(path...)
	if !ok {
		return nil
	}
	sub, ok := node.(Map)
	if !ok {
		return nil
	}
	return sub
}

// Records returns the node at path normalized to a slice of maps. A tag that
// occurred once decodes as a single Map; a repeated tag decodes as a List.
// Callers iterating result sets should not have to care which happened.
func (m Map) Records(path ...string) []Map {
	node, ok := m.Get(path...)
	if !ok {
		return nil
	}
	switch v := node.(type) {
	case Map:
		return []Map{v}
	case List:
		records := make([]Map, 0, len(v))
		for _, item := range v {
			if rec, ok := item.(Map); ok {
				records = append(records, rec)
			}
		}
		return records
	default:
		return nil
	}
}
