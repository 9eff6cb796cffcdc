// Package storage provides object storage backed implementations of the
// domain storage interfaces.
package storage

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"gallery/config"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const avatarObjectPrefix = "avatars/"

// minioAPI is an internal adapter interface so tests can run without a
// real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// minioClientWrapper adapts *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}

func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}

func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (w minioClientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return w.c.RemoveObject(ctx, bucketName, objectName, opts)
}

var _ service.AvatarStorage = (*MinioAvatarStorage)(nil)

// MinioAvatarStorage stores profile images in a MinIO bucket.
type MinioAvatarStorage struct {
	api    minioAPI
	bucket string
}

// NewMinioAvatarStorage creates an avatar storage from the application
// configuration. It returns nil when avatar storage is not configured,
// profile image uploads are simply unavailable in that case.
func NewMinioAvatarStorage(ctx context.Context, cfg *config.Config) (*MinioAvatarStorage, error) {
	if cfg.AvatarStorage == nil {
		return nil, nil
	}

	client, err := minio.New(cfg.AvatarStorage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AvatarStorage.AccessKey, cfg.AvatarStorage.SecretKey, ""),
		Secure: cfg.AvatarStorage.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MinIO client")
	}

	return newMinioAvatarStorageWithAPI(ctx, minioClientWrapper{c: client}, cfg.AvatarStorage.Bucket)
}

// newMinioAvatarStorageWithAPI allows injecting a mockable API in tests.
func newMinioAvatarStorageWithAPI(ctx context.Context, api minioAPI, bucket string) (*MinioAvatarStorage, error) {
	s := &MinioAvatarStorage{
		api:    api,
		bucket: bucket,
	}

	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ensure bucket exists")
	}

	return s, nil
}

func (s *MinioAvatarStorage) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "failed to check bucket existence")
	}

	if !exists {
		if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.Wrap(err, "failed to create bucket")
		}
	}

	return nil
}

// Store uploads a profile image and returns the generated object name.
// The object name is random, the original filename only contributes its
// extension so uploads can never collide or overwrite each other.
func (s *MinioAvatarStorage) Store(ctx context.Context, originalFilename string, reader io.Reader, size int64) (string, error) {
	objectName := avatarObjectPrefix + uuid.NewString() + sanitizeExtension(originalFilename)

	_, err := s.api.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentTypeForFilename(originalFilename),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload profile image")
	}

	return objectName, nil
}

// Remove deletes a previously stored profile image.
func (s *MinioAvatarStorage) Remove(ctx context.Context, objectName string) error {
	if err := s.api.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "failed to remove profile image")
	}

	return nil
}

func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ""
	}
}

func contentTypeForFilename(filename string) string {
	if ct := mime.TypeByExtension(sanitizeExtension(filename)); ct != "" {
		return ct
	}

	return "application/octet-stream"
}
