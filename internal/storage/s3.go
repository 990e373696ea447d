// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage uploads generated artifacts to S3-compatible object
// storage. It wraps the AWS SDK v2 and is configured for path-style access
// (required by CEPH/Hetzner and MinIO).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultLinkExpiry is the lifetime of presigned links to uploaded files.
const DefaultLinkExpiry = 24 * time.Hour

// Object is a file to upload.
type Object struct {
	Name        string
	ContentType string
	Body        []byte
}

// Uploaded describes a stored object and where to fetch it.
type Uploaded struct {
	Key string
	URL string
}

// Client stores objects in a single bucket.
type Client struct {
	s3        *s3.Client
	presigner *s3.PresignClient
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for the bucket
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, so callers can treat
// storage as optional.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		presigner: s3.NewPresignClient(s3Client),
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores body under key.
func (c *Client) Upload(ctx context.Context, key, contentType string, body []byte) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// UploadAll stores every object under prefix and returns a link to each,
// in input order. It stops at the first failure.
func (c *Client) UploadAll(ctx context.Context, prefix string, objects []Object) ([]Uploaded, error) {
	out := make([]Uploaded, 0, len(objects))
	for _, obj := range objects {
		key := path.Join(prefix, obj.Name)
		if err := c.Upload(ctx, key, obj.ContentType, obj.Body); err != nil {
			return out, err
		}
		url, err := c.Link(ctx, key)
		if err != nil {
			return out, err
		}
		out = append(out, Uploaded{Key: key, URL: url})
	}
	return out, nil
}

// Link returns a URL for key: the public URL when one is configured,
// otherwise a presigned GET URL valid for DefaultLinkExpiry.
func (c *Client) Link(ctx context.Context, key string) (string, error) {
	if c.publicURL != "" {
		return c.publicURL + "/" + key, nil
	}
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(DefaultLinkExpiry))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", c.bucket, key, err)
	}
	return req.URL, nil
}

// Bucket returns the name of the target bucket.
func (c *Client) Bucket() string {
	return c.bucket
}
