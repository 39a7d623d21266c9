package compare

import "github.com/disruptio-org/face-compare-service/internal/entity"

type Variant string

const (
	UploadVariant    Variant = "upload"
	ReferenceVariant Variant = "reference"
)

const (
	SourceImageField         = "source_image"
	TargetImageField         = "target_image"
	SimilarityThresholdField = "similarity_threshold"
)

type ReferenceCompareRequest struct {
	SourceBucket        string   `json:"source_bucket" validate:"required"`
	SourceKey           string   `json:"source_key" validate:"required"`
	TargetBucket        string   `json:"target_bucket" validate:"required"`
	TargetKey           string   `json:"target_key" validate:"required"`
	SimilarityThreshold *float64 `json:"similarity_threshold"`
}

func (r ReferenceCompareRequest) ToComparison() entity.ComparisonRequest {
	threshold := entity.DefaultSimilarityThreshold
	if r.SimilarityThreshold != nil {
		threshold = *r.SimilarityThreshold
	}

	return entity.NewReferenceComparison(
		entity.ObjectRef{Bucket: r.SourceBucket, Key: r.SourceKey},
		entity.ObjectRef{Bucket: r.TargetBucket, Key: r.TargetKey},
		threshold,
	)
}

type ErrorDetailResponse struct {
	Detail string `json:"detail"`
}
