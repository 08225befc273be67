// package docarchive stores downloaded invoice documents in S3. The
// archiver takes decoded bytes, renders a dated object key, optionally
// compresses with zstd and uploads through a narrow PutObject seam. AWS
// client construction lives in aws.go.
package docarchive

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/utils"
)

const (
	defaultKeyTemplate = "{yyyy}/{MM}/{id}.{ext}"
	defaultContentType = "application/pdf"
	defaultExtension   = "pdf"
)

// PutObjectAPI is the slice of the S3 surface the archiver needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3api.PutObjectInput, optFns ...func(*s3api.Options)) (*s3api.PutObjectOutput, error)
}

// Document is one invoice rendering plus the identity that names its key.
// A zero IssuedAt stamps the key with the upload time.
type Document struct {
	InvoiceID string
	Content   []byte
	Extension string
	IssuedAt  time.Time
}

// Archiver uploads documents to one bucket.
type Archiver struct {
	componentMetadata types.ComponentMetadata

	api         PutObjectAPI
	bucket      string
	keyTemplate string
	contentType string
	compress    bool

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewArchiver builds an archiver and applies options. A client and a
// bucket are required.
func NewArchiver(options ...types.Option[*Archiver]) (*Archiver, error) {
	a := &Archiver{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DOC_ARCHIVE",
		},
		keyTemplate: defaultKeyTemplate,
		contentType: defaultContentType,
	}
	for _, opt := range options {
		opt(a)
	}
	if a.api == nil {
		return nil, fmt.Errorf("doc archive: an S3 client is required")
	}
	if a.bucket == "" {
		return nil, fmt.Errorf("doc archive: a bucket is required")
	}
	return a, nil
}

// Store uploads one document and returns the object key. The content hash
// metadata covers the uncompressed bytes so integrity checks survive the
// zstd layer.
func (a *Archiver) Store(ctx context.Context, doc Document) (string, error) {
	if doc.InvoiceID == "" {
		return "", fmt.Errorf("doc archive: invoice id is required")
	}
	if len(doc.Content) == 0 {
		return "", fmt.Errorf("doc archive: empty document")
	}

	key := a.renderKey(doc)
	body := doc.Content
	contentEncoding := ""
	if a.compress {
		compressed, err := compressZstd(body)
		if err != nil {
			return "", fmt.Errorf("doc archive: zstd: %w", err)
		}
		body = compressed
		key += ".zst"
		contentEncoding = "zstd"
	}

	put := &s3api.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(a.contentType),
		Metadata: map[string]string{
			"invoice-id":   doc.InvoiceID,
			"content-hash": utils.ContentHash(doc.Content),
		},
	}
	if contentEncoding != "" {
		put.ContentEncoding = aws.String(contentEncoding)
	}

	if _, err := a.api.PutObject(ctx, put); err != nil {
		a.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Store, key: %s, error: %v => Upload failed", a.componentMetadata, key, err)
		return "", fmt.Errorf("doc archive: put %s: %w", key, err)
	}
	a.NotifyLoggers(types.InfoLevel, "%s => level: INFO, event: Store, key: %s, bytes: %d => Document archived", a.componentMetadata, key, len(body))
	return key, nil
}

func (a *Archiver) renderKey(doc Document) string {
	ts := doc.IssuedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	ts = ts.UTC()
	ext := strings.TrimPrefix(doc.Extension, ".")
	if ext == "" {
		ext = defaultExtension
	}
	repl := map[string]string{
		"{yyyy}": ts.Format("2006"),
		"{MM}":   ts.Format("01"),
		"{dd}":   ts.Format("02"),
		"{id}":   doc.InvoiceID,
		"{ext}":  ext,
	}
	key := a.keyTemplate
	for k, v := range repl {
		key = strings.ReplaceAll(key, k, v)
	}
	return key
}
