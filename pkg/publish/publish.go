// Package publish renders documents and uploads them to S3-compatible
// object storage as a static site.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gotml-dev/gotml/pkg/dom"
	"github.com/gotml-dev/gotml/pkg/render"
)

// S3Client is the subset of the S3 API needed for publishing.
// *s3.Client satisfies it.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Page pairs an object key with the document published under it.
type Page struct {
	Key string
	Doc *dom.Node
}

// Publisher renders documents and uploads the HTML to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	s3Client := s3.NewFromConfig(cfg)
//	pub := publish.NewPublisher(s3Client, "my-bucket", "site/")
//
//	err := pub.Publish(ctx, []publish.Page{{Key: "index.html", Doc: home}})
type Publisher struct {
	client       S3Client
	bucket       string
	prefix       string
	renderer     *render.Renderer
	cacheControl string
}

// NewPublisher creates a publisher that writes under the given key
// prefix. Documents are rendered minified unless WithRenderer
// overrides it.
func NewPublisher(client S3Client, bucket, prefix string) *Publisher {
	return &Publisher{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
}

// WithRenderer sets the renderer used for all pages.
func (p *Publisher) WithRenderer(r *render.Renderer) *Publisher {
	p.renderer = r
	return p
}

// WithCacheControl sets the Cache-Control header stored on uploaded
// objects.
func (p *Publisher) WithCacheControl(value string) *Publisher {
	p.cacheControl = value
	return p
}

// Publish renders and uploads all pages. It stops at the first
// failure; pages uploaded before the failure stay uploaded.
func (p *Publisher) Publish(ctx context.Context, pages []Page) error {
	for _, page := range pages {
		if err := p.PublishPage(ctx, page); err != nil {
			return err
		}
	}
	return nil
}

// PublishPage renders and uploads a single page.
func (p *Publisher) PublishPage(ctx context.Context, page Page) error {
	if page.Key == "" {
		return fmt.Errorf("publish: empty object key")
	}

	html, err := p.renderer.RenderToString(page.Doc)
	if err != nil {
		return fmt.Errorf("publish %s: %w", page.Key, err)
	}

	key := path.Join(p.prefix, page.Key)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(html)),
		ContentType: aws.String(contentTypeFor(page.Key)),
		Metadata: map[string]string{
			"published-time": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("publish %s: upload failed: %w", page.Key, err)
	}
	return nil
}

// contentTypeFor maps an object key to its Content-Type. Pages
// without a recognized extension are served as HTML.
func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".xml":
		return "application/xml; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}
