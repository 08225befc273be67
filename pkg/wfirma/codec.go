package wfirma

import (
	"io"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

// Decoded response tree. Map holds child tags, List holds repeated tags,
// leaves are strings.
type (
	Node = xmlcodec.Node
	Map  = xmlcodec.Map
	List = xmlcodec.List
)

// Request body shapes understood by the encoder.
type (
	Field        = xmlcodec.Field
	RequestBody  = xmlcodec.RequestBody
	Record       = xmlcodec.Record
	ActionParams = xmlcodec.ActionParams
	FindParams   = xmlcodec.FindParams
	Raw          = xmlcodec.Raw
)

// Embedded status codes the client treats as success.
const (
	StatusOK        = xmlcodec.StatusOK
	StatusNoContent = xmlcodec.StatusNoContent
)

// EncodeRecord wraps fields in <api><module><record>...</record></module></api>.
func EncodeRecord(module, record string, fields []Field) ([]byte, error) {
	return xmlcodec.EncodeRecord(module, record, fields)
}

// EncodeActionParams wraps fields in <api><module><parameters>...</parameters></module></api>.
func EncodeActionParams(module string, params []Field) ([]byte, error) {
	return xmlcodec.EncodeActionParams(module, params)
}

// EncodeFindParams encodes basic find paging and field selection.
func EncodeFindParams(module string, p FindParams) ([]byte, error) {
	return xmlcodec.EncodeFindParams(module, p)
}

// DecodeDocument parses an XML response into a generic tree.
func DecodeDocument(r io.Reader) (Map, error) {
	return xmlcodec.DecodeDocument(r)
}

// StatusCode extracts the embedded status code from a decoded document.
func StatusCode(doc Map) (string, bool) {
	return xmlcodec.StatusCode(doc)
}

// IsSuccess reports whether code is one of the success statuses.
func IsSuccess(code string) bool {
	return xmlcodec.IsSuccess(code)
}
