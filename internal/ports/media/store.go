package media

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUpload envuelve cualquier falla del gateway al subir un archivo.
	ErrUpload        = errors.New("media upload failed")
	ErrNotConfigured = errors.New("media gateway not configured")
)

// File es un binario recibido por multipart, listo para reenviar al gateway.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Store sube binarios a un storage direccionado por contenido y firma URLs de lectura.
type Store interface {
	// Upload devuelve el CID asignado por el gateway.
	Upload(ctx context.Context, f File) (string, error)
	// SignedURL devuelve una URL de lectura válida por ttl.
	SignedURL(ctx context.Context, cid string, ttl time.Duration) (string, error)
}
