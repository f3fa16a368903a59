package medias

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"storj.io/uplink"
)

// StorjStore saves media files in a Storj bucket.
type StorjStore struct {
	// Settings
	bucketName string
	// Client
	project *uplink.Project
}

// NewStorjStoreFromProject instantiates a client using a project (useful for testing purposes).
func NewStorjStoreFromProject(bucketName string, project *uplink.Project) (*StorjStore, error) {
	ctx := context.Background()

	// Ensure the desired Bucket within the Project is created.
	_, err := project.EnsureBucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("could not ensure bucket: %v", err)
	}

	return &StorjStore{
		bucketName: bucketName,
		project:    project,
	}, nil
}

// NewStorjStoreWithCredentials instantiates a client using the access grant.
func NewStorjStoreWithCredentials(bucketName string, accessGrant string) (*StorjStore, error) {
	ctx := context.Background()

	access, err := uplink.ParseAccess(accessGrant)
	if err != nil {
		return nil, fmt.Errorf("could not request access grant: %v", err)
	}

	project, err := uplink.OpenProject(ctx, access)
	if err != nil {
		return nil, fmt.Errorf("could not open project: %v", err)
	}

	return NewStorjStoreFromProject(bucketName, project)
}

func (s *StorjStore) GetObject(key string) ([]byte, error) {
	ctx := context.Background()

	download, err := s.project.DownloadObject(ctx, s.bucketName, key, nil)
	if errors.Is(err, uplink.ErrObjectNotFound) {
		return nil, ErrObjectNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("could not open object: %v", err)
	}
	defer download.Close()

	data, err := io.ReadAll(download)
	if err != nil {
		return nil, fmt.Errorf("could not read data: %v", err)
	}

	return data, nil
}

func (s *StorjStore) PutObject(key string, data []byte) error {
	ctx := context.Background()

	upload, err := s.project.UploadObject(ctx, s.bucketName, key, nil)
	if err != nil {
		return fmt.Errorf("could not initiate upload: %v", err)
	}

	_, err = io.Copy(upload, bytes.NewReader(data))
	if err != nil {
		_ = upload.Abort()
		return fmt.Errorf("could not upload data: %v", err)
	}

	err = upload.Commit()
	if err != nil {
		return fmt.Errorf("could not commit uploaded object: %v", err)
	}

	return nil
}

func (s *StorjStore) DeleteObject(key string) error {
	ctx := context.Background()
	_, err := s.project.DeleteObject(ctx, s.bucketName, key)
	return err
}

// Close releases the project resources.
func (s *StorjStore) Close() error {
	return s.project.Close()
}
