// Package photostore uploads quote-request photos to S3 and hands back the
// public URLs that go into the lead record.
package photostore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/stoneworks/lead-intake/pkg/logging"
)

// S3API is the subset of the S3 client used by Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store writes lead photos under a per-day prefix with random object names.
type Store struct {
	bucket   string
	region   string
	s3Client S3API
	clock    func() time.Time
	logger   *logging.Logger
}

// NewStore creates a photo Store. If bucket is empty the store reports itself
// unconfigured and uploads are skipped by callers.
func NewStore(s3Client S3API, bucket, region string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		bucket:   bucket,
		region:   region,
		s3Client: s3Client,
		clock:    time.Now,
		logger:   logger,
	}
}

// WithClock overrides the time source; used by tests to pin object keys.
func (s *Store) WithClock(clock func() time.Time) *Store {
	s.clock = clock
	return s
}

// Configured reports whether uploads can be attempted. An unconfigured store
// is not an error: the lead is still captured without photos.
func (s *Store) Configured() bool {
	return s != nil && s.bucket != "" && s.s3Client != nil
}

var unsafeNameRe = regexp.MustCompile(`[^\w.\-]+`)

// Upload writes one photo and returns its public URL. The object key is
// leads/<date>/<uuid>_<sanitized filename> so a day's submissions group
// together and names never collide.
func (s *Store) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("photostore: not configured")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	safeName := unsafeNameRe.ReplaceAllString(name, "_")
	key := fmt.Sprintf("leads/%s/%s_%s", s.clock().UTC().Format("2006-01-02"), uuid.NewString(), safeName)

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("photostore: s3 put %s: %w", key, err)
	}

	s.logger.Info("lead photo uploaded", "key", key, "bytes", len(data))
	return s.publicURL(key), nil
}

func (s *Store) publicURL(key string) string {
	host := s.bucket + ".s3." + s.region + ".amazonaws.com"
	if s.region == "" {
		host = s.bucket + ".s3.amazonaws.com"
	}
	return "https://" + host + "/" + (&url.URL{Path: key}).EscapedPath()
}
