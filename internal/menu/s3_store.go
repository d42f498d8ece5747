package menu

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"restaurant/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// objectAPI is the subset of the S3 client used by the store.
type objectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Store implements Store for menu files kept in AWS S3.
type s3Store struct {
	client objectAPI
	bucket string
	logger zerolog.Logger
}

// NewS3Store creates a new S3-based menu store.
func NewS3Store(ctx context.Context, bucket, region string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "menu-s3-store").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 menu store initialised")

	return newS3Store(s3.NewFromConfig(cfg), bucket, logger), nil
}

func newS3Store(client objectAPI, bucket string, logger zerolog.Logger) *s3Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Load reads a JSON menu object. key is the full object key.
func (s *s3Store) Load(ctx context.Context, key string) (*Menu, error) {
	s.logger.Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("loading menu from S3")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("%w: get object (bucket=%s, key=%s): %w", model.ErrMenuLoad, s.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object %s: %w", model.ErrMenuLoad, key, err)
	}

	m, err := decode(data)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to parse menu object")
		return nil, fmt.Errorf("%w: parse object %s: %w", model.ErrMenuLoad, key, err)
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Int("items", m.Len()).
		Msg("menu loaded successfully from S3")

	return m, nil
}

// Save uploads the menu, replacing the object.
func (s *s3Store) Save(ctx context.Context, m *Menu, key string) error {
	data, err := encode(m)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", model.ErrMenuSave, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return fmt.Errorf("%w: put object (bucket=%s, key=%s): %w", model.ErrMenuSave, s.bucket, key, err)
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("menu saved to S3")

	return nil
}

// fallbackStore tries S3 first, then falls back to the local file system.
type fallbackStore struct {
	s3Store   Store
	fileStore Store
	s3Prefix  string
	s3Enabled bool
	logger    zerolog.Logger
}

// NewFallbackStore creates a store that tries S3 first, then the local file system.
// If s3Store is nil, only the file store is used.
func NewFallbackStore(s3Store, fileStore Store, s3Prefix string, s3Enabled bool, logger zerolog.Logger) Store {
	return &fallbackStore{
		s3Store:   s3Store,
		fileStore: fileStore,
		s3Prefix:  s3Prefix,
		s3Enabled: s3Enabled,
		logger:    logger.With().Str("component", "menu-fallback-store").Logger(),
	}
}

func (s *fallbackStore) useS3() bool {
	return s.s3Enabled && s.s3Store != nil
}

// Load reads from S3 at prefix+location, falling back to location on disk.
func (s *fallbackStore) Load(ctx context.Context, location string) (*Menu, error) {
	if s.useS3() {
		key := s.s3Prefix + location
		m, err := s.s3Store.Load(ctx, key)
		if err == nil {
			return m, nil
		}
		s.logger.Warn().
			Err(err).
			Str("s3_key", key).
			Msg("failed to load menu from S3, falling back to local file system")
	}

	return s.fileStore.Load(ctx, location)
}

// Save writes to S3 at prefix+location, falling back to location on disk.
func (s *fallbackStore) Save(ctx context.Context, m *Menu, location string) error {
	if s.useS3() {
		key := s.s3Prefix + location
		err := s.s3Store.Save(ctx, m, key)
		if err == nil {
			return nil
		}
		s.logger.Warn().
			Err(err).
			Str("s3_key", key).
			Msg("failed to save menu to S3, falling back to local file system")
	}

	return s.fileStore.Save(ctx, m, location)
}
