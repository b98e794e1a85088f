package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3LogoStore uploads company logos to Amazon S3 (or compatible APIs).
type S3LogoStore struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    string
	keyPrefix string
	publicURL string
}

// NewS3LogoStore builds a logo store writing under bucket/keyPrefix.
// publicURL is the base under which uploaded keys are reachable.
func NewS3LogoStore(client *s3.Client, bucket, keyPrefix, publicURL string) *S3LogoStore {
	return &S3LogoStore{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3LogoStore) UploadLogo(ctx context.Context, companyName, contentType string, body io.Reader) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("storage bucket is required")
	}

	key := s.logoKey(companyName, contentType)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

func (s *S3LogoStore) logoKey(companyName, contentType string) string {
	ext := ".png"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}

	slug := slugify(companyName)
	if slug == "" {
		slug = "logo"
	}

	key := fmt.Sprintf("%s-%s%s", slug, uuid.NewString(), ext)
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}
	return key
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
