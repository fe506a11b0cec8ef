package minio

import (
	"fmt"

	"crm-alert-srv/config"
	pkgMinio "crm-alert-srv/pkg/minio"
)

var client pkgMinio.IMinIO

// Connect initializes the object-archive client. Returns (nil, nil) when
// archival is disabled; callers treat a nil client as "skip archival".
func Connect(cfg config.MinIOConfig) (pkgMinio.IMinIO, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	var err error
	client, err = pkgMinio.New(pkgMinio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	return client, nil
}

// Disconnect releases the object-archive client.
func Disconnect() error {
	if client != nil {
		return client.Close()
	}
	return nil
}
