package compare

import (
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/disruptio-org/face-compare-service/pkg/response"
)

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrInvalidThreshold    = errors.New("similarity_threshold must be a number")
	ErrMissingSourceImage  = errors.New("source_image is required")
	ErrMissingTargetImage  = errors.New("target_image is required")
)

// ServiceError is the single failure kind of a comparison: anything the
// face comparison service or its client reported. Message is returned to
// the caller verbatim.
type ServiceError struct {
	Kind    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewServiceError(err error) *ServiceError {
	kind := "Unknown"
	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		kind = awsErr.Code()
	}

	return &ServiceError{
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
}
