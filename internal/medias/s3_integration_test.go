//go:build integration

package medias

import (
	"context"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestS3Store(t *testing.T) {
	s, minioClient := SetUpS3Store(t)

	// Add a file
	err := s.PutObject("333d6b3a.jpg", []byte("JPEG"))
	require.NoError(t, err)

	// Check the content type
	info, err := minioClient.StatObject(context.Background(), "media", "333d6b3a.jpg", minio.StatObjectOptions{})
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", info.ContentType)

	// Read the wrong file
	_, err = s.GetObject("missing.jpg")
	require.Error(t, err)

	// Read the correct file
	data, err := s.GetObject("333d6b3a.jpg")
	require.NoError(t, err)
	require.Equal(t, []byte("JPEG"), data)

	// Delete the file
	err = s.DeleteObject("333d6b3a.jpg")
	require.NoError(t, err)

	// Delete a missing file
	err = s.DeleteObject("333d6b3a.jpg")
	require.Error(t, err)
}

/* Test Helpers */

func SetUpS3Store(t *testing.T) (*S3Store, *minio.Client) {
	// Settings
	accessKey := "XXX"      // at least 3 characters
	secretKey := "XXXXXXXX" // at least 8 characters
	bucketName := "media"

	ctx := context.Background()

	// Start the container
	// (See documentation https://golang.testcontainers.org/quickstart/)
	req := testcontainers.ContainerRequest{
		Image: "minio/minio:RELEASE.2023-02-27T18-10-45Z",
		Env: map[string]string{
			"MINIO_ACCESS_KEY": accessKey,
			"MINIO_SECRET_KEY": secretKey,
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000"},
		WaitingFor:   wait.ForLog("MinIO Object Storage Server").WithStartupTimeout(10 * time.Second),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err.Error())
		}
	})

	// Extract endpoint
	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)
	minioPort, err := nat.NewPort("", "9000")
	require.NoError(t, err)
	port, err := minioContainer.MappedPort(ctx, minioPort)
	require.NoError(t, err)
	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	store, err := NewS3StoreWithCredentials(endpoint, bucketName, accessKey, secretKey, false)
	require.NoError(t, err)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	require.NoError(t, err)

	if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
		exists, errBucketExists := minioClient.BucketExists(ctx, bucketName)
		if !(errBucketExists == nil && exists) {
			log.Fatalf("failed to create bucket %q: %v", bucketName, err)
		}
	}

	return store, minioClient
}
