package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"impar-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Provider - хранилище аватаров пользователей в S3
type Provider interface {
	UploadAvatar(ctx context.Context, userID string, fileReader io.Reader, fileSize int64, contentType string) (objectName string, err error)
	GetAvatar(ctx context.Context, userID string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadAvatar(ctx context.Context, userID string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	if i.s3client == nil {
		return "", errors.New("s3 клиент не инициализирован")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectName := i.getAvatarObjectName(userID)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки аватара в S3")
	}
	return objectName, nil
}

func (i impl) GetAvatar(ctx context.Context, userID string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("s3 клиент не инициализирован")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, i.getAvatarObjectName(userID), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения аватара из S3")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, object); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения аватара из S3")
	}
	return buf.Bytes(), nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	if i.s3client == nil {
		return errors.New("s3 клиент не инициализирован")
	}
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (i impl) getAvatarObjectName(userID string) string {
	return fmt.Sprintf("avatars/%s", userID)
}
