package repository

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, objectName string, size int64) error
	Delete(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
	ObjectNameFromURL(publicURL string) (string, error)
}

type ImageStorage struct {
	Client     *minio.Client
	BucketName string

	publicBase string
}

func NewImageStorage(endpoint, user, password, bucketName string, sslMode bool) (*ImageStorage, error) {
	ctx := context.Background()

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(user, password, ""),
		Secure: sslMode,
	})

	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, err
	}

	if !exists {
		err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, err
		}
	}

	// Originals must stay publicly readable: the rendering service fetches
	// them by URL, with no credentials.
	policy := fmt.Sprintf(`{
        "Version": "2012-10-17",
        "Statement": [
            {
                "Effect": "Allow",
                "Principal": {
                    "AWS": ["*"]
                },
                "Action": ["s3:GetObject"],
                "Resource": ["arn:aws:s3:::%s/*"]
            }
        ]
    }`, bucketName)

	err = client.SetBucketPolicy(ctx, bucketName, policy)
	if err != nil {
		return nil, err
	}

	scheme := "http"
	if sslMode {
		scheme = "https"
	}

	return &ImageStorage{
		Client:     client,
		BucketName: bucketName,
		publicBase: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucketName),
	}, nil
}

func (i *ImageStorage) Upload(ctx context.Context, file io.Reader, objectName string, size int64) error {
	contentType := "application/octet-stream"
	ext := filepath.Ext(objectName)
	if ext != "" {
		ct := mime.TypeByExtension(ext)
		if ct != "" {
			contentType = ct
		}
	}

	_, err := i.Client.PutObject(ctx, i.BucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return err
	}
	return nil
}

func (i *ImageStorage) Delete(ctx context.Context, objectName string) error {
	err := i.Client.RemoveObject(ctx, i.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return err
	}

	return nil
}

// PublicURL is deterministic: the bucket policy makes every object readable at
// <scheme>://<endpoint>/<bucket>/<object>, no presigning involved.
func (i *ImageStorage) PublicURL(objectName string) string {
	return i.publicBase + "/" + objectName
}

// ObjectNameFromURL recovers the object name by stripping the public base from
// a URL previously returned by PublicURL.
func (i *ImageStorage) ObjectNameFromURL(publicURL string) (string, error) {
	objectName, ok := strings.CutPrefix(publicURL, i.publicBase+"/")
	if !ok || objectName == "" {
		return "", fmt.Errorf("url %q is not served from bucket %q", publicURL, i.BucketName)
	}
	return objectName, nil
}
