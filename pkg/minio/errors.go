package minio

import "errors"

var (
	ErrEndpointRequired = errors.New("minio endpoint is required")
	ErrBucketRequired   = errors.New("minio bucket is required")
)
