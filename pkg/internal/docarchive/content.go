package docarchive

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

// DownloadContent pulls the base64 document body out of an
// invoices.download response and decodes it. The leaf sits under
// invoices.invoice_content or, on older responses, at the top level.
func DownloadContent(doc xmlcodec.Map) ([]byte, error) {
	encoded := doc.Text("invoices", "invoice_content")
	if encoded == "" {
		encoded = doc.Text("invoice_content")
	}
	if encoded == "" {
		return nil, fmt.Errorf("doc archive: response carries no invoice_content")
	}
	// The vendor wraps base64 lines; strip the whitespace before decoding.
	encoded = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, encoded)
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("doc archive: invoice_content is not base64: %w", err)
	}
	return content, nil
}
