package medias

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store saves media files in a S3 bucket.
type S3Store struct {
	// Settings
	endpoint   string
	bucketName string
	// Client
	minioClient *minio.Client
}

func NewS3StoreWithCredentials(endpoint string, bucketName string, accessKey, secretKey string, secure bool) (*S3Store, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	return &S3Store{
		endpoint:    endpoint,
		bucketName:  bucketName,
		minioClient: minioClient,
	}, nil
}

func (s *S3Store) GetObject(key string) ([]byte, error) {
	object, err := s.minioClient.GetObject(context.Background(), s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	stat, err := object.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotExist
		}
		return nil, err
	}
	if stat.Size == 0 {
		return nil, ErrObjectNotExist
	}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(object); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *S3Store) PutObject(key string, data []byte) error {
	_, err := s.minioClient.PutObject(context.Background(), s.bucketName, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: MimeType(filepath.Ext(key)),
	})
	return err
}

func (s *S3Store) DeleteObject(key string) error {
	_, err := s.GetObject(key)
	if err != nil {
		return err
	}
	return s.minioClient.RemoveObject(context.Background(), s.bucketName, key, minio.RemoveObjectOptions{})
}
