package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/vivacar/internal/config"
)

func TestS3PhotoStorage_URL(t *testing.T) {
	s := NewS3PhotoStorage(config.StorageConfig{
		Bucket: "fleet",
		Region: "sa-east-1",
	})
	assert.Equal(t, "https://fleet.s3.sa-east-1.amazonaws.com/vehicles/1/a.webp", s.URL("vehicles/1/a.webp"))

	custom := NewS3PhotoStorage(config.StorageConfig{
		Bucket:          "fleet",
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		PublicBaseURL:   "https://cdn.vivacar.com.br/",
	})
	assert.Equal(t, "https://cdn.vivacar.com.br/vehicles/1/a.webp", custom.URL("vehicles/1/a.webp"))
}
