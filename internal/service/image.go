package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"recetario/config"
)

// s3Client is the subset of the S3 API the image store needs
type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ImageService stores recipe images in S3. Objects live under an
// extension-less key so the id parsed back out of a public URL is the whole
// object name.
type ImageService struct {
	client    s3Client
	bucket    string
	keyPrefix string
}

// NewImageService creates a new ImageService instance
func NewImageService(s3cfg *config.S3Config) *ImageService {
	return &ImageService{
		client:    s3cfg.Client,
		bucket:    s3cfg.BucketName,
		keyPrefix: "recipe-images",
	}
}

// Upload stores the image bytes and returns the public URL
func (s *ImageService) Upload(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty image payload", ErrImageUpload)
	}

	key := fmt.Sprintf("%s/%s", s.keyPrefix, uuid.New().String())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageUpload, err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	log.Printf("[ImageService] uploaded image: %s", url)
	return url, nil
}

// Delete removes the remote object referenced by the URL. Deleting an
// already-absent object succeeds.
func (s *ImageService) Delete(ctx context.Context, url string) error {
	id := ExternalImageID(url)
	if id == "" {
		return fmt.Errorf("%w: cannot extract object id from %q", ErrImageDelete, url)
	}

	key := fmt.Sprintf("%s/%s", s.keyPrefix, id)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageDelete, err)
	}

	log.Printf("[ImageService] deleted image: %s", url)
	return nil
}

// ExternalImageID extracts the stable object identifier from an image URL:
// the last path segment, minus any file extension.
func ExternalImageID(url string) string {
	parts := strings.Split(url, "/")
	name := parts[len(parts)-1]
	if dot := strings.LastIndex(name, "."); dot != -1 {
		name = name[:dot]
	}
	return name
}
