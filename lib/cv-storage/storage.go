package cvstorage

import (
	"context"
	"fmt"
	"hr-pipeline-backend/config"
	s3client "hr-pipeline-backend/s3"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider хранилище файлов резюме, объекты лежат под префиксом кандидата
type Provider interface {
	Upload(ctx context.Context, applicantID, fileName string, fileReader io.Reader, fileSize int64, contentType string) (ref string, err error)
	Exists(ctx context.Context, applicantID, ref string) (bool, error)
}

var Instance Provider

func NewHandler() {
	if s3client.Client == nil {
		log.Warn("хранилище резюме не настроено, загрузка и проверка файлов недоступны")
		Instance = disabled{}
		return
	}
	Instance = NewInstance(s3client.Client, config.Conf.S3.BucketName)
}

func NewInstance(client *minio.Client, bucketName string) Provider {
	return &impl{
		client:     client,
		bucketName: bucketName,
	}
}

type impl struct {
	client     *minio.Client
	bucketName string
}

func (i impl) Upload(ctx context.Context, applicantID, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ref := uuid.NewString() + strings.ToLower(path.Ext(fileName))
	_, err := i.client.PutObject(ctx, i.bucketName, objectName(applicantID, ref), fileReader, fileSize, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"filename": fileName},
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла резюме")
	}
	return ref, nil
}

func (i impl) Exists(ctx context.Context, applicantID, ref string) (bool, error) {
	_, err := i.client.StatObject(ctx, i.bucketName, objectName(applicantID, ref), minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, errors.Wrap(err, "ошибка проверки файла резюме")
	}
	return true, nil
}

func objectName(applicantID, ref string) string {
	return fmt.Sprintf("%s/%s", applicantID, path.Base(ref))
}

type disabled struct{}

func (disabled) Upload(ctx context.Context, applicantID, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	return "", errors.New("хранилище резюме не настроено")
}

func (disabled) Exists(ctx context.Context, applicantID, ref string) (bool, error) {
	return false, errors.New("хранилище резюме не настроено")
}
