package response

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorIsComparesCodeAndMessage(t *testing.T) {
	a := NewError(http.StatusBadRequest, "bad request")

	if !errors.Is(a, NewError(http.StatusBadRequest, "bad request")) {
		t.Fatal("expected errors with equal code and message to match")
	}
	if errors.Is(a, NewError(http.StatusInternalServerError, "bad request")) {
		t.Fatal("expected different codes not to match")
	}
	if errors.Is(a, errors.New("bad request")) {
		t.Fatal("expected plain error not to match")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(http.StatusBadRequest, nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	cause := errors.New("strconv.ParseFloat: parsing \"abc\": invalid syntax")
	err := Wrap(http.StatusBadRequest, cause)

	var respErr *Error
	if !errors.As(err, &respErr) || respErr.Code != http.StatusBadRequest {
		t.Fatalf("expected *Error with status 400, got %#v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
}
