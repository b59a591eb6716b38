package site

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/markout-dev/markout/internal/errors"
)

// S3API is the subset of the S3 client the publisher uses. The concrete
// *s3.Client satisfies it; tests substitute a fake.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Publisher publishes the site to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := site.NewS3Publisher(s3.NewFromConfig(cfg), "my-bucket", "site/")
type S3Publisher struct {
	client       S3API
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Publisher creates a publisher that writes under the given key
// prefix in bucket.
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// WithCacheControl sets the Cache-Control header stored on every
// published object.
func (p *S3Publisher) WithCacheControl(v string) *S3Publisher {
	p.cacheControl = v
	return p
}

// Put uploads body to the bucket under the publisher's prefix.
func (p *S3Publisher) Put(ctx context.Context, name, contentType string, body io.Reader) error {
	rel, ok := publishRelPath(name)
	if !ok {
		return errors.New("E402").WithDetail("Refusing to upload " + name)
	}

	key := p.prefix + rel
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return errors.New("E403").
			WithDetail("Uploading s3://" + p.bucket + "/" + key).
			Wrap(err)
	}
	return nil
}

// Prune deletes objects under the publisher's prefix whose names are
// not in keep. It returns the number of objects deleted. Call it after
// a successful build with the build's keep set to drop files removed
// from the site.
func (p *S3Publisher) Prune(ctx context.Context, keep map[string]bool) (int, error) {
	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix),
	})

	var stale []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, errors.New("E404").
				WithDetail("Listing s3://" + p.bucket + "/" + p.prefix).
				Wrap(err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := strings.TrimPrefix(key, p.prefix)
			if name == "" || keep[name] {
				continue
			}
			stale = append(stale, key)
		}
	}

	for _, key := range stale {
		_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return 0, errors.New("E401").
				WithDetail("Deleting s3://" + p.bucket + "/" + key).
				Wrap(err)
		}
	}

	return len(stale), nil
}
