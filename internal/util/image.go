package util

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
)

const base64Marker = ";base64,"

func GetDesignDirectoryPath() string {
	return "designs"
}

func GetBlogDirectoryPath() string {
	return "blogs"
}

func createBucketIfNotExists(s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(context.Background(), bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type ImageUploadOptions struct {
	// Add a prefix to the object name
	// For example, if the object name is "cover.png" and the directory path is
	// "blogs", the resulting name will be "blogs/cover.png"
	DirectoryPath string
	Bucket        string
	S3            *minio.Client
}

// IsBase64DataURI reports whether the string is an inline base64 image
// payload rather than an already-hosted URL.
func IsBase64DataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, base64Marker)
}

// DecodeBase64DataURI splits a data URI into its raw bytes and content type.
func DecodeBase64DataURI(dataURI string) ([]byte, string, error) {
	if !IsBase64DataURI(dataURI) {
		return nil, "", errors.New("not a base64 image data uri")
	}

	markerIdx := strings.Index(dataURI, base64Marker)
	contentType := strings.TrimPrefix(dataURI[:markerIdx], "data:")

	data, err := base64.StdEncoding.DecodeString(dataURI[markerIdx+len(base64Marker):])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, contentType, nil
}

// UploadBase64Image decodes an inline base64 image and stores it in the
// bucket, returning the public object URL.
func UploadBase64Image(ctx context.Context, dataURI string, iuo *ImageUploadOptions) (string, error) {
	if iuo == nil || iuo.S3 == nil {
		return "", errors.New("image storage is not configured")
	}

	data, contentType, err := DecodeBase64DataURI(dataURI)
	if err != nil {
		return "", err
	}

	if err := createBucketIfNotExists(iuo.S3, iuo.Bucket); err != nil {
		return "", fmt.Errorf("failed to create bucket: %w", err)
	}

	name, err := GenerateNChar(12)
	if err != nil {
		return "", err
	}

	objectName := AddUniquePrefixToFileName(name + extensionForContentType(contentType))
	if iuo.DirectoryPath != "" {
		objectName = filepath.Join(iuo.DirectoryPath, objectName)
	}

	_, err = iuo.S3.PutObject(
		ctx,
		iuo.Bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return ObjectPublicURL(iuo.S3, iuo.Bucket, objectName), nil
}

// UploadImageByFileHeader stores a multipart image upload in the bucket and
// returns the public object URL.
func UploadImageByFileHeader(ctx context.Context, fileHeader *multipart.FileHeader, iuo *ImageUploadOptions) (string, error) {
	if iuo == nil || iuo.S3 == nil {
		return "", errors.New("image storage is not configured")
	}

	if err := createBucketIfNotExists(iuo.S3, iuo.Bucket); err != nil {
		return "", fmt.Errorf("failed to create bucket: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	objectName := AddUniquePrefixToFileName(filepath.Base(fileHeader.Filename))
	if iuo.DirectoryPath != "" {
		objectName = filepath.Join(iuo.DirectoryPath, objectName)
	}

	_, err = iuo.S3.PutObject(
		ctx,
		iuo.Bucket,
		objectName,
		file,
		fileHeader.Size,
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return ObjectPublicURL(iuo.S3, iuo.Bucket, objectName), nil
}

func ObjectPublicURL(s3 *minio.Client, bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", s3.EndpointURL(), bucket, objectName)
}

// ObjectNameFromURL extracts the object name from a stored public URL.
// Returns false for raw base64 payloads and for URLs hosted elsewhere.
func ObjectNameFromURL(s3 *minio.Client, bucket, storedURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/%s/", s3.EndpointURL(), bucket)
	if !strings.HasPrefix(storedURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(storedURL, prefix), true
}

// RemovedImages returns the stored URLs from old that no longer appear in
// the incoming list, i.e. the assets safe to delete after an update.
func RemovedImages(old, incoming []string) []string {
	keep := make(map[string]struct{}, len(incoming))
	for _, url := range incoming {
		keep[url] = struct{}{}
	}

	var removed []string
	for _, url := range old {
		if _, ok := keep[url]; !ok {
			removed = append(removed, url)
		}
	}
	return removed
}

func extensionForContentType(contentType string) string {
	subtype := strings.TrimPrefix(contentType, "image/")
	// "svg+xml" and friends
	if idx := strings.Index(subtype, "+"); idx != -1 {
		subtype = subtype[:idx]
	}
	if subtype == "" {
		return ".bin"
	}
	return "." + subtype
}
