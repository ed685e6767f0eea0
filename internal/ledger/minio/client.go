// Package minio provides a Ledger that stores each ledger key as one
// object in a bucket.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/careervault/careervault-server/internal/model"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// Wrapper to adapt *minio.Client to minioAPI.
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
func (w minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

var _ model.Ledger = (*Ledger)(nil)

type Ledger struct {
	api    minioAPI
	bucket string
}

// NewLedger creates an object-storage ledger using a real *minio.Client.
func NewLedger(ctx context.Context, client *minio.Client, bucket string) (*Ledger, error) {
	return NewLedgerWithAPI(ctx, minioClientWrapper{c: client}, bucket)
}

// NewLedgerWithAPI allows injecting a mockable API (used in tests).
func NewLedgerWithAPI(ctx context.Context, api minioAPI, bucket string) (*Ledger, error) {
	l := &Ledger{
		api:    api,
		bucket: bucket,
	}

	if err := l.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return l, nil
}

func (l *Ledger) ensureBucketExists(ctx context.Context) error {
	exists, err := l.api.BucketExists(ctx, l.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := l.api.MakeBucket(ctx, l.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Get reads the object stored under key. The object client reports a
// missing object only when the stream is read, so absence is detected
// on the ReadAll error, not the GetObject call.
func (l *Ledger) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := l.api.GetObject(ctx, l.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	value, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, model.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return value, nil
}

// Set writes value as the object under key.
func (l *Ledger) Set(ctx context.Context, key string, value []byte) error {
	_, err := l.api.PutObject(ctx, l.bucket, key, bytes.NewReader(value), int64(len(value)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}
