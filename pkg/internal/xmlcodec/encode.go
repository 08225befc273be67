package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Field is one name/value pair inside a request body. Value is rendered with
// fmt, so numeric and string values both work.
type Field struct {
	Name  string
	Value interface{}
}

// RequestBody is a request payload that knows how to render itself inside a
// module envelope. The zero body (nil) means the request carries no payload.
type RequestBody interface {
	MarshalBody(module string) ([]byte, error)
}

// Record wraps flat record fields, producing
// <api><module><name><k>v</k>...</name></module></api>.
type Record struct {
	Name   string
	Fields []Field
}

// MarshalBody renders the record envelope for module.
func (r Record) MarshalBody(module string) ([]byte, error) {
	return EncodeRecord(module, r.Name, r.Fields)
}

// ActionParams wraps name/value action parameters, producing
// <parameters><parameter><name>n</name><value>v</value></parameter>...</parameters>
// inside the module envelope.
type ActionParams []Field

// MarshalBody renders the parameter envelope for module.
func (p ActionParams) MarshalBody(module string) ([]byte, error) {
	return EncodeActionParams(module, p)
}

// FindParams wraps basic find paging. Zero Page and Limit are omitted, as is
// an empty Fields list.
type FindParams struct {
	Page   int
	Limit  int
	Fields []string
}

// MarshalBody renders the find envelope for module.
func (p FindParams) MarshalBody(module string) ([]byte, error) {
	return EncodeFindParams(module, p)
}

// Raw passes a caller-built document through untouched. It is the override
// hatch for conditions, ordering and any query shape the builders do not
// cover.
type Raw []byte

// MarshalBody returns the raw document unchanged.
func (r Raw) MarshalBody(string) ([]byte, error) {
	return []byte(r), nil
}

// EncodeRecord builds the full envelope for one flat record of module.
func EncodeRecord(module, record string, fields []Field) ([]byte, error) {
	return encodeEnvelope(module, func(enc *xml.Encoder) error {
		rec := xml.StartElement{Name: xml.Name{Local: record}}
		if err := enc.EncodeToken(rec); err != nil {
			return err
		}
		for _, f := range fields {
			if err := encodeLeaf(enc, f.Name, f.Value); err != nil {
				return err
			}
		}
		return enc.EncodeToken(rec.End())
	})
}

// EncodeActionParams builds the full envelope for a name/value parameter list
// of module.
func EncodeActionParams(module string, params []Field) ([]byte, error) {
	return encodeEnvelope(module, func(enc *xml.Encoder) error {
		parameters := xml.StartElement{Name: xml.Name{Local: "parameters"}}
		if err := enc.EncodeToken(parameters); err != nil {
			return err
		}
		for _, f := range params {
			parameter := xml.StartElement{Name: xml.Name{Local: "parameter"}}
			if err := enc.EncodeToken(parameter); err != nil {
				return err
			}
			if err := encodeLeaf(enc, "name", f.Name); err != nil {
				return err
			}
			if err := encodeLeaf(enc, "value", f.Value); err != nil {
				return err
			}
			if err := enc.EncodeToken(parameter.End()); err != nil {
				return err
			}
		}
		return enc.EncodeToken(parameters.End())
	})
}

// EncodeFindParams builds the full envelope for basic find paging of module.
func EncodeFindParams(module string, p FindParams) ([]byte, error) {
	return encodeEnvelope(module, func(enc *xml.Encoder) error {
		parameters := xml.StartElement{Name: xml.Name{Local: "parameters"}}
		if err := enc.EncodeToken(parameters); err != nil {
			return err
		}
		if p.Page > 0 {
			if err := encodeLeaf(enc, "page", p.Page); err != nil {
				return err
			}
		}
		if p.Limit > 0 {
			if err := encodeLeaf(enc, "limit", p.Limit); err != nil {
				return err
			}
		}
		if len(p.Fields) > 0 {
			fields := xml.StartElement{Name: xml.Name{Local: "fields"}}
			if err := enc.EncodeToken(fields); err != nil {
				return err
			}
			for _, name := range p.Fields {
				if err := encodeLeaf(enc, "field", name); err != nil {
					return err
				}
			}
			if err := enc.EncodeToken(fields.End()); err != nil {
				return err
			}
		}
		return enc.EncodeToken(parameters.End())
	})
}

func encodeEnvelope(module string, inner func(*xml.Encoder) error) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)

	api := xml.StartElement{Name: xml.Name{Local: "api"}}
	mod := xml.StartElement{Name: xml.Name{Local: module}}
	if err := enc.EncodeToken(api); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(mod); err != nil {
		return nil, err
	}
	if err := inner(enc); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(mod.End()); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(api.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeLeaf(enc *xml.Encoder, name string, value interface{}) error {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	text := fmt.Sprintf("%v", value)
	if err := enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}
