package docarchive

import "github.com/mtlab/wfirma-go/pkg/internal/types"

// WithClient sets the S3 client (or a test fake).
func WithClient(api PutObjectAPI) types.Option[*Archiver] {
	return func(a *Archiver) {
		a.api = api
	}
}

// WithBucket sets the target bucket.
func WithBucket(bucket string) types.Option[*Archiver] {
	return func(a *Archiver) {
		a.bucket = bucket
	}
}

// WithKeyTemplate overrides the object key template. Recognized tokens:
// {yyyy} {MM} {dd} {id} {ext}.
func WithKeyTemplate(template string) types.Option[*Archiver] {
	return func(a *Archiver) {
		if template != "" {
			a.keyTemplate = template
		}
	}
}

// WithContentType overrides the stored content type.
func WithContentType(contentType string) types.Option[*Archiver] {
	return func(a *Archiver) {
		if contentType != "" {
			a.contentType = contentType
		}
	}
}

// WithCompression toggles zstd compression of uploads.
func WithCompression(enabled bool) types.Option[*Archiver] {
	return func(a *Archiver) {
		a.compress = enabled
	}
}

// WithLogger attaches loggers at construction.
func WithLogger(loggers ...types.Logger) types.Option[*Archiver] {
	return func(a *Archiver) {
		a.ConnectLogger(loggers...)
	}
}
