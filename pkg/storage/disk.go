package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Disk writes objects below a local directory that the HTTP server exposes under publicPrefix.
type Disk struct {
	root         string
	publicPrefix string
}

func NewDisk(root, publicPrefix string) *Disk {
	return &Disk{
		root:         root,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

func (d *Disk) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	full, err := d.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToUploadFile, err)
	}

	if err := os.WriteFile(full, body, filePerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToUploadFile, err)
	}

	return d.publicPrefix + "/" + key, nil
}

func (d *Disk) Delete(_ context.Context, key string) error {
	full, err := d.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteFile, err)
	}

	return nil
}

func (d *Disk) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if key == "" || clean == "/" || clean != "/"+key {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	return filepath.Join(d.root, filepath.FromSlash(key)), nil
}
