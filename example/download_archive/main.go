package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

// Downloads an invoice rendering and archives it to S3. Pass the invoice
// id as the only argument; the archive section of wfirma.toml points at
// the bucket (a LocalStack endpoint works for local runs).
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: download_archive <invoice-id>")
		os.Exit(1)
	}
	invoiceID := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := wfirma.LoadConfig(wfirma.DefaultConfigPath, true)
	if err != nil {
		panic(err)
	}

	client, err := wfirma.NewClient(cfg.API.ClientOptions()...)
	if err != nil {
		panic(err)
	}

	doc, err := client.Invoices.Download(ctx, invoiceID)
	if err != nil {
		panic(err)
	}
	content, err := wfirma.DownloadContent(doc)
	if err != nil {
		panic(err)
	}

	a := cfg.Archive
	s3Client, err := wfirma.NewS3ClientStatic(ctx, a.Region, a.AccessKey, a.SecretKey, a.SessionToken, a.Endpoint, a.ForcePathStyle)
	if err != nil {
		panic(err)
	}

	archiver, err := wfirma.NewArchiver(
		wfirma.ArchiverWithClient(s3Client),
		wfirma.ArchiverWithBucket(a.Bucket),
		wfirma.ArchiverWithCompression(a.Compress),
	)
	if err != nil {
		panic(err)
	}

	key, err := archiver.Store(ctx, wfirma.ArchiveDocument{
		InvoiceID: invoiceID,
		Content:   content,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("archived %d bytes as s3://%s/%s\n", len(content), a.Bucket, key)
}
