package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/oklog/ulid/v2"
)

var ErrNoFile = errors.New("no file uploaded")

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ReadFormFile(file *multipart.FileHeader) ([]byte, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ReadFormFile reads an uploaded file fully into memory. The content is
// opaque: no size, type or format checks are made.
func (u *utils) ReadFormFile(file *multipart.FileHeader) ([]byte, error) {
	if file == nil {
		return nil, ErrNoFile
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
