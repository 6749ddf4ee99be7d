// Package deploy publishes an exported site to S3.
package deploy

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads a directory tree to an S3 bucket.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	log    *slog.Logger
}

// NewPublisher creates a publisher for the bucket. The prefix is
// prepended to every object key.
func NewPublisher(client ObjectPutter, bucket, prefix string, log *slog.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix, log: log}
}

// Publish uploads every file under dir and returns the number of
// objects written.
func (p *Publisher) Publish(ctx context.Context, dir string) (int, error) {
	if p.bucket == "" {
		return 0, fmt.Errorf("deploy: no bucket configured")
	}

	uploaded := 0
	err := filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		key := path.Join(p.prefix, filepath.ToSlash(rel))

		if err := p.putFile(ctx, file, key); err != nil {
			return fmt.Errorf("deploy: uploading %s: %w", key, err)
		}
		p.log.Info("uploaded", "key", key)
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}

	p.log.Info("deploy complete", "objects", uploaded, "bucket", p.bucket)
	return uploaded, nil
}

func (p *Publisher) putFile(ctx context.Context, file, key string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(file)),
	})
	return err
}

// contentType resolves the upload content type from the file extension.
func contentType(file string) string {
	if ct := mime.TypeByExtension(filepath.Ext(file)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
