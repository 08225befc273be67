package docarchive

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	s3api "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/zstd"

	"github.com/mtlab/wfirma-go/pkg/internal/utils"
	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

type capturePut struct {
	input *s3api.PutObjectInput
	err   error
}

func (c *capturePut) PutObject(ctx context.Context, params *s3api.PutObjectInput, optFns ...func(*s3api.Options)) (*s3api.PutObjectOutput, error) {
	c.input = params
	if c.err != nil {
		return nil, c.err
	}
	return &s3api.PutObjectOutput{}, nil
}

func TestStoreUploadsDocument(t *testing.T) {
	fake := &capturePut{}
	arch, err := NewArchiver(WithClient(fake), WithBucket("invoices"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}

	content := []byte("%PDF-1.7 test document")
	doc := Document{
		InvoiceID: "42",
		Content:   content,
		IssuedAt:  time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
	key, err := arch.Store(context.Background(), doc)
	if err != nil {
		t.Fatalf("store error: %v", err)
	}
	if key != "2024/05/42.pdf" {
		t.Fatalf("unexpected key %q", key)
	}

	in := fake.input
	if in == nil {
		t.Fatal("expected a PutObject call")
	}
	if *in.Bucket != "invoices" || *in.Key != key {
		t.Fatalf("unexpected destination %s/%s", *in.Bucket, *in.Key)
	}
	if *in.ContentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", *in.ContentType)
	}
	if in.ContentEncoding != nil {
		t.Fatalf("expected no content encoding, got %q", *in.ContentEncoding)
	}
	if in.Metadata["invoice-id"] != "42" {
		t.Fatalf("unexpected metadata: %v", in.Metadata)
	}
	if in.Metadata["content-hash"] != utils.ContentHash(content) {
		t.Fatalf("expected content hash metadata, got %v", in.Metadata)
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		t.Fatalf("body read error: %v", err)
	}
	if string(body) != string(content) {
		t.Fatal("uploaded body differs from the document")
	}
}

func TestStoreCompressesWithZstd(t *testing.T) {
	fake := &capturePut{}
	arch, err := NewArchiver(WithClient(fake), WithBucket("invoices"), WithCompression(true))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}

	content := []byte(strings.Repeat("invoice body ", 100))
	doc := Document{
		InvoiceID: "7",
		Content:   content,
		IssuedAt:  time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
	}
	key, err := arch.Store(context.Background(), doc)
	if err != nil {
		t.Fatalf("store error: %v", err)
	}
	if key != "2024/12/7.pdf.zst" {
		t.Fatalf("unexpected key %q", key)
	}

	in := fake.input
	if in.ContentEncoding == nil || *in.ContentEncoding != "zstd" {
		t.Fatal("expected zstd content encoding")
	}
	// Hash metadata covers the original bytes, not the compressed frame.
	if in.Metadata["content-hash"] != utils.ContentHash(content) {
		t.Fatalf("unexpected hash metadata: %v", in.Metadata)
	}

	zr, err := zstd.NewReader(in.Body)
	if err != nil {
		t.Fatalf("zstd reader error: %v", err)
	}
	defer zr.Close()
	restored, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress error: %v", err)
	}
	if string(restored) != string(content) {
		t.Fatal("decompressed body differs from the document")
	}
}

func TestStoreValidatesInput(t *testing.T) {
	if _, err := NewArchiver(WithBucket("invoices")); err == nil {
		t.Fatal("expected an error without a client")
	}
	if _, err := NewArchiver(WithClient(&capturePut{})); err == nil {
		t.Fatal("expected an error without a bucket")
	}

	arch, err := NewArchiver(WithClient(&capturePut{}), WithBucket("invoices"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	if _, err := arch.Store(context.Background(), Document{Content: []byte("x")}); err == nil {
		t.Fatal("expected an error without an invoice id")
	}
	if _, err := arch.Store(context.Background(), Document{InvoiceID: "1"}); err == nil {
		t.Fatal("expected an error for an empty document")
	}
}

func TestStoreSurfacesPutError(t *testing.T) {
	fake := &capturePut{err: errors.New("access denied")}
	arch, err := NewArchiver(WithClient(fake), WithBucket("invoices"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	_, err = arch.Store(context.Background(), Document{InvoiceID: "1", Content: []byte("x")})
	if err == nil || !strings.Contains(err.Error(), "access denied") {
		t.Fatalf("expected the put error to surface, got %v", err)
	}
}

func TestRenderKeyTemplateAndDefaults(t *testing.T) {
	fake := &capturePut{}
	arch, err := NewArchiver(
		WithClient(fake),
		WithBucket("invoices"),
		WithKeyTemplate("archive/{yyyy}/{MM}/{dd}/{id}.{ext}"),
	)
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	doc := Document{
		InvoiceID: "15",
		Content:   []byte("x"),
		Extension: ".xml",
		IssuedAt:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	key, err := arch.Store(context.Background(), doc)
	if err != nil {
		t.Fatalf("store error: %v", err)
	}
	if key != "archive/2024/05/10/15.xml" {
		t.Fatalf("unexpected key %q", key)
	}

	// A zero IssuedAt stamps with the current time; only the shape is
	// asserted here.
	defArch, err := NewArchiver(WithClient(fake), WithBucket("invoices"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	key, err = defArch.Store(context.Background(), Document{InvoiceID: "9", Content: []byte("x")})
	if err != nil {
		t.Fatalf("store error: %v", err)
	}
	if !strings.HasSuffix(key, "/9.pdf") {
		t.Fatalf("unexpected key shape %q", key)
	}
}

func TestDownloadContent(t *testing.T) {
	payload := []byte("hello pdf bytes")
	encoded := base64.StdEncoding.EncodeToString(payload)
	wrapped := encoded[:6] + "\n" + encoded[6:]

	doc := xmlcodec.Map{"invoices": xmlcodec.Map{"invoice_content": wrapped}}
	got, err := DownloadContent(doc)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("unexpected content %q", got)
	}

	flat := xmlcodec.Map{"invoice_content": encoded}
	if got, err = DownloadContent(flat); err != nil || string(got) != string(payload) {
		t.Fatalf("expected the top-level fallback to decode, got %q, %v", got, err)
	}

	if _, err := DownloadContent(xmlcodec.Map{"status": xmlcodec.Map{"code": "OK"}}); err == nil {
		t.Fatal("expected an error without content")
	}
	if _, err := DownloadContent(xmlcodec.Map{"invoice_content": "!!not base64!!"}); err == nil {
		t.Fatal("expected an error for junk content")
	}
}
