package repository

import (
	"errors"
	"os"
	"strings"
)

// ErrEmptyKey is returned by every key-value backend for a blank key.
var ErrEmptyKey = errors.New("key-value store: empty key")

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
