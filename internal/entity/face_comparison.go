package entity

import "errors"

const DefaultSimilarityThreshold = 90.0

type AddressingMode string

const (
	BytesMode     AddressingMode = "BYTES"
	ReferenceMode AddressingMode = "REFERENCE"
)

var ErrMixedAddressing = errors.New("comparison request must use either image bytes or object references")

// ObjectRef points at an image stored in an object store bucket.
type ObjectRef struct {
	Bucket string
	Key    string
}

// ComparisonRequest addresses its two images either by raw bytes or by
// object references, never both.
type ComparisonRequest struct {
	SourceBytes         []byte
	TargetBytes         []byte
	SourceRef           *ObjectRef
	TargetRef           *ObjectRef
	SimilarityThreshold float64
}

func NewBytesComparison(source, target []byte, threshold float64) ComparisonRequest {
	return ComparisonRequest{
		SourceBytes:         source,
		TargetBytes:         target,
		SimilarityThreshold: threshold,
	}
}

func NewReferenceComparison(source, target ObjectRef, threshold float64) ComparisonRequest {
	return ComparisonRequest{
		SourceRef:           &source,
		TargetRef:           &target,
		SimilarityThreshold: threshold,
	}
}

// Mode reports the addressing mode of the request, failing when both or
// neither mode is populated.
func (r ComparisonRequest) Mode() (AddressingMode, error) {
	hasBytes := r.SourceBytes != nil || r.TargetBytes != nil
	hasRefs := r.SourceRef != nil || r.TargetRef != nil

	switch {
	case hasBytes && !hasRefs:
		return BytesMode, nil
	case hasRefs && !hasBytes && r.SourceRef != nil && r.TargetRef != nil:
		return ReferenceMode, nil
	default:
		return "", ErrMixedAddressing
	}
}

// BoundingBox is expressed in fractions of the image dimensions. Keys keep
// the capitalisation Rekognition uses.
type BoundingBox struct {
	Left   float64 `json:"Left"`
	Top    float64 `json:"Top"`
	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`
}

type MatchEntry struct {
	Similarity  float64     `json:"similarity"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

type ComparisonResult struct {
	Matches        []MatchEntry `json:"matches"`
	UnmatchedFaces int          `json:"unmatched_faces"`
}
