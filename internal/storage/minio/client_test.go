package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/testutil"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putErr     error
	putKey     string
	putType    string
	putSize    int64
	putPayload []byte

	getRC  io.ReadCloser
	getErr error

	removeErr error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey, f.putType, f.putSize = key, opts.ContentType, size
	f.putPayload, _ = io.ReadAll(r)
	return minioLib.UploadInfo{Key: key, Size: size}, f.putErr
}
func (f *fakeMinio) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}

func newTestClient(t *testing.T, api *fakeMinio) *Client {
	t.Helper()
	api.bucketExists = true
	c, err := NewClientWithAPI(context.Background(), api, "b", "http://cdn.test/b/", testutil.MakeNoopLogger())
	require.NoError(t, err)
	api.bucketExistsErr = nil
	return c
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "b", "", testutil.MakeNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, "b", c.bucket)
	assert.False(t, api.madeBucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(context.Background(), api, "bucket", "", testutil.MakeNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, "bucket", c.bucket)
	assert.True(t, api.madeBucket)
}

func TestNewClientWithAPI_Errors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeMinio
	}{
		{"bucket exists error", &fakeMinio{bucketExistsErr: errors.New("boom")}},
		{"make bucket error", &fakeMinio{makeBucketErr: errors.New("fail")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "bucket", "", testutil.MakeNoopLogger())
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to ensure bucket exists")
		})
	}
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := newTestClient(t, api)
		err := c.Upload(ctx, "product/k.png", "image/png", bytes.NewReader([]byte("data")), 4)
		require.NoError(t, err)
		assert.Equal(t, "product/k.png", api.putKey)
		assert.Equal(t, "image/png", api.putType)
		assert.Equal(t, int64(4), api.putSize)
		assert.Equal(t, []byte("data"), api.putPayload)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{putErr: errors.New("put-fail")}
		c := newTestClient(t, api)
		err := c.Upload(ctx, "k", "image/png", bytes.NewReader([]byte("data")), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
	})
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{getRC: io.NopCloser(bytes.NewReader([]byte("abc")))}
		c := newTestClient(t, api)
		rc, err := c.Download(ctx, "k")
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), body)
	})

	t.Run("missing key", func(t *testing.T) {
		api := &fakeMinio{getErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}
		c := newTestClient(t, api)
		rc, err := c.Download(ctx, "absent")
		assert.Nil(t, rc)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{getErr: errors.New("get-fail")}
		c := newTestClient(t, api)
		rc, err := c.Download(ctx, "k")
		assert.Nil(t, rc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, &fakeMinio{})
		assert.NoError(t, c.Delete(ctx, "k"))
	})

	t.Run("error", func(t *testing.T) {
		c := newTestClient(t, &fakeMinio{removeErr: errors.New("remove-fail")})
		err := c.Delete(ctx, "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete object")
	})
}

func TestClient_URL(t *testing.T) {
	c := newTestClient(t, &fakeMinio{})
	assert.Equal(t, "http://cdn.test/b/product/a%20b.png", c.URL("product/a b.png"))
}

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", publicBase(Options{PublicURL: "https://cdn.example.com"}))
	assert.Equal(t, "http://localhost:9000/imgs", publicBase(Options{Endpoint: "localhost:9000", Bucket: "imgs"}))
	assert.Equal(t, "https://s3.local/imgs", publicBase(Options{Endpoint: "s3.local", Bucket: "imgs", UseSSL: true}))
}

func TestClient_Ping(t *testing.T) {
	api := &fakeMinio{}
	c := newTestClient(t, api)
	require.NoError(t, c.Ping(context.Background()))

	api.bucketExists = false
	assert.Error(t, c.Ping(context.Background()))
}

func TestClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	api := &fakeMinio{removeErr: errors.New("host down")}
	c := newTestClient(t, api)

	for range 5 {
		require.Error(t, c.Delete(context.Background(), "k"))
	}

	api.removeErr = nil
	err := c.Delete(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
