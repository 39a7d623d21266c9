package utils

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	now := time.Now()

	id, err := New().NewULIDFromTimestamp(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ulid.Parse(id)
	if err != nil {
		t.Fatalf("generated id %q is not a ULID: %v", id, err)
	}
	if parsed.Time() != ulid.Timestamp(now) {
		t.Fatalf("expected timestamp %d, got %d", ulid.Timestamp(now), parsed.Time())
	}
}

func TestReadFormFile(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0x00, 0x01, 'n', 'o', 't', 'a', 'j', 'p', 'g'}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("source_image", "face.bin")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	defer form.RemoveAll()

	got, err := New().ReadFormFile(form.File["source_image"][0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("expected payload to be returned unchanged, got %v", got)
	}
}

func TestReadFormFileNil(t *testing.T) {
	if _, err := New().ReadFormFile(nil); !errors.Is(err, ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}
