package storage_test

import (
	"context"
	"testing"

	"Recipe-Publisher/internal/utils/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAwsS3RequiresBucket(t *testing.T) {
	s3, err := storage.NewAwsS3(context.Background(), storage.S3Config{Region: "us-east-1"})
	require.Error(t, err)
	assert.Nil(t, s3)
	assert.Contains(t, err.Error(), "AWS_S3_BUCKET")
}

func TestLoadS3ConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_S3_BUCKET", "recipes-assets")
	t.Setenv("AWS_S3_REGION", "eu-west-1")

	cfg := storage.LoadS3Config()
	assert.Equal(t, "recipes-assets", cfg.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Region)
}
