// Package storage wraps the S3-compatible object store that holds the
// site's media files. Every stored object is addressed publicly only
// through the {PUBLIC_BASE_URL}/api/images/{key} proxy, never by a
// provider URL.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"wellnesstal-backend/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Client struct {
	s3Client *s3.S3
	bucket   string
}

func NewClient() (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.AWS_REGION),
	}
	if config.AWS_ACCESS_KEY_ID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.AWS_ACCESS_KEY_ID,
			config.AWS_SECRET_ACCESS_KEY,
			"",
		)
	}

	// Support MinIO for local development
	if config.AWS_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.AWS_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if strings.HasPrefix(config.AWS_ENDPOINT, "http://") {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &Client{
		s3Client: s3.New(sess),
		bucket:   config.STORAGE_BUCKET,
	}

	// Ensure bucket exists (for MinIO)
	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(client.bucket),
	})
	if err != nil {
		_, err = client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(client.bucket),
		})
		if err != nil && !bucketAlreadyExists(err) {
			return nil, fmt.Errorf("failed to ensure bucket %q: %w", client.bucket, err)
		}
	}

	return client, nil
}

// bucketAlreadyExists reports whether a CreateBucket failure only means
// another process won the race to create it.
func bucketAlreadyExists(err error) bool {
	aerr, ok := err.(awserr.Error)
	return ok && (aerr.Code() == s3.ErrCodeBucketAlreadyOwnedByYou || aerr.Code() == s3.ErrCodeBucketAlreadyExists)
}

func (c *Client) Upload(key string, body io.Reader, contentType string) error {
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, body); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	_, err := c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to storage: %w", err)
	}
	return nil
}

// Get streams an object for the image proxy. Missing keys return
// (nil, "", nil) so the handler can answer 404 without string-matching
// provider errors.
func (c *Client) Get(key string) (io.ReadCloser, string, error) {
	out, err := c.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound") {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to get object: %w", err)
	}
	return out.Body, aws.StringValue(out.ContentType), nil
}

func (c *Client) Delete(key string) error {
	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from storage: %w", err)
	}
	return nil
}
