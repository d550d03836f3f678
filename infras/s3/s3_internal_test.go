package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"hoteladmin/config"
	"hoteladmin/infras/otel/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted *s3.DeleteObjectInput
	err     error
}

func (f *fakeObjects) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.deleted = params

	return &s3.DeleteObjectOutput{}, nil
}

func newTestService(objects objectAPI, publicDomain string) *s3Impl {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "rates"
	cfg.External.S3.APIEndpoint = "http://localhost:9000"
	cfg.External.S3.PublicDomain = publicDomain

	return &s3Impl{client: objects, config: cfg, otel: mocks.NewOtel()}
}

func TestUploadFileBytes(t *testing.T) {
	objects := &fakeObjects{}
	svc := newTestService(objects, "https://cdn.example.com")

	url, err := svc.UploadFileBytes(context.Background(), "", "rate-sheets/h-1", "2024-12-24-abc.json", "application/json", []byte(`{"ok":true}`))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/rate-sheets/h-1/2024-12-24-abc.json", url)
	assert.Equal(t, "rates", aws.ToString(objects.put.Bucket))
	assert.Equal(t, "rate-sheets/h-1/2024-12-24-abc.json", aws.ToString(objects.put.Key))
	assert.Equal(t, "application/json", aws.ToString(objects.put.ContentType))
	assert.Equal(t, int64(11), aws.ToInt64(objects.put.ContentLength))
	assert.Equal(t, `{"ok":true}`, string(objects.body))
}

func TestUploadFileBytes_WithoutPublicDomain(t *testing.T) {
	svc := newTestService(&fakeObjects{}, "")

	url, err := svc.UploadFileBytes(context.Background(), "", "dir", "file.json", "application/json", []byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/rates/dir/file.json", url)
}

func TestUploadFileBytes_Error(t *testing.T) {
	svc := newTestService(&fakeObjects{err: errors.New("access denied")}, "")

	_, err := svc.UploadFileBytes(context.Background(), "", "dir", "file.json", "application/json", []byte("{}"))

	assert.ErrorContains(t, err, "access denied")
}

func TestDeleteFile(t *testing.T) {
	objects := &fakeObjects{}
	svc := newTestService(objects, "")

	require.NoError(t, svc.DeleteFile(context.Background(), "", "rate-sheets/h-1", "a.json"))

	assert.Equal(t, "rates", aws.ToString(objects.deleted.Bucket))
	assert.Equal(t, "rate-sheets/h-1/a.json", aws.ToString(objects.deleted.Key))
}

func TestGetObjectNameFromURL(t *testing.T) {
	svc := newTestService(&fakeObjects{}, "https://cdn.example.com")

	assert.Equal(t, "rate-sheets/h-1/a.json", svc.GetObjectNameFromURL("", "https://cdn.example.com/rate-sheets/h-1/a.json"))
	assert.Equal(t, "rate-sheets/h-1/a.json", svc.GetObjectNameFromURL("", "http://localhost:9000/rates/rate-sheets/h-1/a.json"))
	assert.Empty(t, svc.GetObjectNameFromURL("", "https://elsewhere.example.com/a.json"))
}
