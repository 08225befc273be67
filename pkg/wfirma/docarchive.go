package wfirma

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mtlab/wfirma-go/pkg/internal/docarchive"
)

// Archiver uploads invoice documents to an S3 bucket.
type Archiver = docarchive.Archiver

// ArchiveDocument is one invoice rendering plus the identity naming its key.
type ArchiveDocument = docarchive.Document

// PutObjectAPI is the slice of the S3 surface the archiver needs.
type PutObjectAPI = docarchive.PutObjectAPI

// NewArchiver builds an archiver from options. A client and a bucket are
// required.
func NewArchiver(options ...Option[*Archiver]) (*Archiver, error) {
	return docarchive.NewArchiver(options...)
}

// ArchiverWithClient sets the S3 client.
func ArchiverWithClient(api PutObjectAPI) Option[*Archiver] {
	return docarchive.WithClient(api)
}

// ArchiverWithBucket sets the destination bucket.
func ArchiverWithBucket(bucket string) Option[*Archiver] {
	return docarchive.WithBucket(bucket)
}

// ArchiverWithKeyTemplate overrides the object key template.
func ArchiverWithKeyTemplate(template string) Option[*Archiver] {
	return docarchive.WithKeyTemplate(template)
}

// ArchiverWithContentType overrides the uploaded content type.
func ArchiverWithContentType(contentType string) Option[*Archiver] {
	return docarchive.WithContentType(contentType)
}

// ArchiverWithCompression toggles zstd compression before upload.
func ArchiverWithCompression(enabled bool) Option[*Archiver] {
	return docarchive.WithCompression(enabled)
}

// ArchiverWithLogger attaches loggers to the archiver.
func ArchiverWithLogger(loggers ...Logger) Option[*Archiver] {
	return docarchive.WithLogger(loggers...)
}

// DownloadContent extracts the base64 document bytes from a decoded
// download response.
func DownloadContent(doc Map) ([]byte, error) {
	return docarchive.DownloadContent(doc)
}

// NewS3ClientStatic creates an S3 client using static credentials. A
// non-empty endpoint points at LocalStack/MinIO.
func NewS3ClientStatic(
	ctx context.Context,
	region string,
	accessKey string,
	secretKey string,
	sessionToken string,
	endpoint string,
	forcePathStyle bool,
) (*s3.Client, error) {
	return docarchive.NewS3ClientStatic(ctx, region, accessKey, secretKey, sessionToken, endpoint, forcePathStyle)
}

// NewS3ClientAssumeRole creates an S3 client by assuming an IAM role via STS.
func NewS3ClientAssumeRole(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	duration time.Duration,
	externalID string,
	sourceCreds aws.CredentialsProvider,
	endpoint string,
	forcePathStyle bool,
) (*s3.Client, error) {
	return docarchive.NewS3ClientAssumeRole(ctx, region, roleARN, sessionName, duration, externalID, sourceCreds, endpoint, forcePathStyle)
}
