package xmlcodec_test

import (
	"strings"
	"testing"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

// TestEncodeRecord checks the flat record envelope shape.
func TestEncodeRecord(t *testing.T) {
	body, err := xmlcodec.EncodeRecord("invoices", "invoice", []xmlcodec.Field{
		{Name: "contractor_id", Value: 15},
		{Name: "payment_method", Value: "transfer"},
	})
	if err != nil {
		t.Fatalf("EncodeRecord error: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<api><invoices><invoice>` +
		`<contractor_id>15</contractor_id>` +
		`<payment_method>transfer</payment_method>` +
		`</invoice></invoices></api>`
	if string(body) != want {
		t.Errorf("unexpected record envelope.\nExpected: %s\nGot:      %s", want, body)
	}
}

// TestEncodeRecord_EscapesValues checks XML metacharacters survive encoding.
func TestEncodeRecord_EscapesValues(t *testing.T) {
	body, err := xmlcodec.EncodeRecord("contractors", "contractor", []xmlcodec.Field{
		{Name: "name", Value: "ACME & Co <Ltd>"},
	})
	if err != nil {
		t.Fatalf("EncodeRecord error: %v", err)
	}
	if !strings.Contains(string(body), "<name>ACME &amp; Co &lt;Ltd&gt;</name>") {
		t.Errorf("expected escaped value in body, got: %s", body)
	}
}

// TestEncodeActionParams checks the name/value parameter envelope.
func TestEncodeActionParams(t *testing.T) {
	body, err := xmlcodec.EncodeActionParams("invoices", []xmlcodec.Field{
		{Name: "page", Value: "all"},
		{Name: "duplicate", Value: 0},
		{Name: "leaflet", Value: 0},
	})
	if err != nil {
		t.Fatalf("EncodeActionParams error: %v", err)
	}

	data := string(body)
	for _, fragment := range []string{
		"<api><invoices><parameters>",
		"<parameter><name>page</name><value>all</value></parameter>",
		"<parameter><name>duplicate</name><value>0</value></parameter>",
		"<parameter><name>leaflet</name><value>0</value></parameter>",
	} {
		if !strings.Contains(data, fragment) {
			t.Errorf("expected body to contain %q, got: %s", fragment, data)
		}
	}
}

// TestEncodeActionParams_Empty checks an empty parameter list still produces
// the parameters element.
func TestEncodeActionParams_Empty(t *testing.T) {
	body, err := xmlcodec.EncodeActionParams("invoices", nil)
	if err != nil {
		t.Fatalf("EncodeActionParams error: %v", err)
	}
	if !strings.Contains(string(body), "<parameters></parameters>") {
		t.Errorf("expected empty parameters element, got: %s", body)
	}
}

// TestEncodeFindParams checks paging fields and their omission when zero.
func TestEncodeFindParams(t *testing.T) {
	body, err := xmlcodec.EncodeFindParams("contractors", xmlcodec.FindParams{
		Page:   2,
		Limit:  50,
		Fields: []string{"id", "name"},
	})
	if err != nil {
		t.Fatalf("EncodeFindParams error: %v", err)
	}

	data := string(body)
	for _, fragment := range []string{
		"<api><contractors><parameters>",
		"<page>2</page>",
		"<limit>50</limit>",
		"<fields><field>id</field><field>name</field></fields>",
	} {
		if !strings.Contains(data, fragment) {
			t.Errorf("expected body to contain %q, got: %s", fragment, data)
		}
	}

	// Zero values drop out entirely.
	body, err = xmlcodec.EncodeFindParams("contractors", xmlcodec.FindParams{})
	if err != nil {
		t.Fatalf("EncodeFindParams error: %v", err)
	}
	data = string(body)
	for _, fragment := range []string{"<page>", "<limit>", "<fields>"} {
		if strings.Contains(data, fragment) {
			t.Errorf("did not expect %q in zero-value body: %s", fragment, data)
		}
	}
}

// TestRawBody checks the raw override passes bytes through untouched.
func TestRawBody(t *testing.T) {
	raw := xmlcodec.Raw(`<api><invoices><parameters><conditions/></parameters></invoices></api>`)
	body, err := raw.MarshalBody("invoices")
	if err != nil {
		t.Fatalf("MarshalBody error: %v", err)
	}
	if string(body) != string(raw) {
		t.Errorf("expected raw body passthrough, got: %s", body)
	}
}

// TestDecodeDocument_Envelope checks <api> unwrapping and leaf extraction.
func TestDecodeDocument_Envelope(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<api>
  <invoices><invoice><id>42</id></invoice></invoices>
  <status><code>OK</code></status>
</api>`

	doc, err := xmlcodec.DecodeDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}

	if got := doc.Text("status", "code"); got != "OK" {
		t.Errorf("expected status code OK, got %q", got)
	}

	records := doc.Records("invoices", "invoice")
	if len(records) != 1 {
		t.Fatalf("expected 1 invoice record, got %d", len(records))
	}
	if got := records[0].Text("id"); got != "42" {
		t.Errorf("expected invoice id 42, got %q", got)
	}
}

// TestDecodeDocument_RepeatedTags checks repeated tags group into an ordered list.
func TestDecodeDocument_RepeatedTags(t *testing.T) {
	payload := `<api>
  <invoices>
    <invoice><id>1</id></invoice>
    <invoice><id>2</id></invoice>
    <invoice><id>3</id></invoice>
  </invoices>
  <status><code>OK</code></status>
</api>`

	doc, err := xmlcodec.DecodeDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}

	records := doc.Records("invoices", "invoice")
	if len(records) != 3 {
		t.Fatalf("expected 3 invoice records, got %d", len(records))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := records[i].Text("id"); got != want {
			t.Errorf("record %d: expected id %s, got %q", i, want, got)
		}
	}
}

// TestDecodeDocument_TopLevelFirstWins checks a duplicated top-level tag keeps
// its first occurrence instead of becoming a list.
func TestDecodeDocument_TopLevelFirstWins(t *testing.T) {
	payload := `<api>
  <status><code>OK</code></status>
  <status><code>ERROR</code></status>
</api>`

	doc, err := xmlcodec.DecodeDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}
	if got := doc.Text("status", "code"); got != "OK" {
		t.Errorf("expected first status to win, got %q", got)
	}
}

// TestDecodeDocument_NonAPIRoot checks a bare module root decodes as its children.
func TestDecodeDocument_NonAPIRoot(t *testing.T) {
	payload := `<invoices><invoice><id>7</id></invoice></invoices>`

	doc, err := xmlcodec.DecodeDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}
	if got := doc.Text("invoice", "id"); got != "7" {
		t.Errorf("expected invoice id 7, got %q", got)
	}
}

// TestDecodeDocument_LeafWhitespace checks leaves trim surrounding whitespace.
func TestDecodeDocument_LeafWhitespace(t *testing.T) {
	payload := `<api>
  <invoices>
    <invoice>
      <number>
        FV 1/2024
      </number>
      <description></description>
    </invoice>
  </invoices>
</api>`

	doc, err := xmlcodec.DecodeDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}
	records := doc.Records("invoices", "invoice")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Text("number"); got != "FV 1/2024" {
		t.Errorf("expected trimmed number, got %q", got)
	}
	if got := records[0].Text("description"); got != "" {
		t.Errorf("expected empty description, got %q", got)
	}
}

// TestDecodeDocument_Malformed checks broken XML surfaces an error.
func TestDecodeDocument_Malformed(t *testing.T) {
	if _, err := xmlcodec.DecodeDocument(strings.NewReader(`<api><unclosed>`)); err == nil {
		t.Errorf("expected error for malformed XML")
	}
	if _, err := xmlcodec.DecodeDocument(strings.NewReader(``)); err == nil {
		t.Errorf("expected error for empty input")
	}
}

// TestStatusCode checks embedded status extraction rules.
func TestStatusCode(t *testing.T) {
	doc := xmlcodec.Map{"status": xmlcodec.Map{"code": "OK"}}
	code, ok := xmlcodec.StatusCode(doc)
	if !ok || code != "OK" {
		t.Errorf("expected OK status, got %q (ok=%v)", code, ok)
	}

	// A leaf status carries no verdict.
	doc = xmlcodec.Map{"status": "OK"}
	if _, ok := xmlcodec.StatusCode(doc); ok {
		t.Errorf("did not expect a status code from a leaf status")
	}

	// No status entry at all.
	if _, ok := xmlcodec.StatusCode(xmlcodec.Map{}); ok {
		t.Errorf("did not expect a status code from an empty document")
	}
}

// TestNoContentDocument checks the synthetic empty-body document.
func TestNoContentDocument(t *testing.T) {
	doc := xmlcodec.NoContentDocument()
	code, ok := xmlcodec.StatusCode(doc)
	if !ok || code != xmlcodec.StatusNoContent {
		t.Errorf("expected NO_CONTENT, got %q (ok=%v)", code, ok)
	}
	if !xmlcodec.IsSuccess(code) {
		t.Errorf("expected NO_CONTENT to count as success")
	}
	if xmlcodec.IsSuccess("ERROR") {
		t.Errorf("did not expect ERROR to count as success")
	}
}

// TestEncodeDecodeRoundTrip checks an encoded record decodes back intact.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	body, err := xmlcodec.EncodeRecord("contractors", "contractor", []xmlcodec.Field{
		{Name: "name", Value: "ACME & Co"},
		{Name: "tax_id_type", Value: "nip"},
	})
	if err != nil {
		t.Fatalf("EncodeRecord error: %v", err)
	}

	doc, err := xmlcodec.DecodeDocument(strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}
	if got := doc.Text("contractors", "contractor", "name"); got != "ACME & Co" {
		t.Errorf("expected round-tripped name, got %q", got)
	}
	if got := doc.Text("contractors", "contractor", "tax_id_type"); got != "nip" {
		t.Errorf("expected round-tripped tax_id_type, got %q", got)
	}
}
