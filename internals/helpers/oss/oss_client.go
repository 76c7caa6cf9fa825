package oss

import (
	"fmt"
	"strings"
	"sync"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"

	"sabhaku_backend/internals/configs"
)

var (
	bucketOnce sync.Once
	bucketInst *alioss.Bucket
	bucketErr  error
)

// Bucket returns the shared OSS bucket handle, initialized lazily from ENV.
func Bucket() (*alioss.Bucket, error) {
	bucketOnce.Do(func() {
		if configs.OSSBucket == "" || configs.OSSEndpoint == "" {
			bucketErr = fmt.Errorf("oss: bucket not configured")
			return
		}
		client, err := alioss.New(configs.OSSEndpoint, configs.OSSAccessKey, configs.OSSSecretKey)
		if err != nil {
			bucketErr = fmt.Errorf("oss: init client: %w", err)
			return
		}
		bucketInst, bucketErr = client.Bucket(configs.OSSBucket)
	})
	return bucketInst, bucketErr
}

// PublicURL builds the durable object URL for a stored key.
func PublicURL(key string) string {
	endpoint := strings.TrimPrefix(configs.OSSEndpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucket, endpoint, key)
}
