package compareService

import (
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"github.com/disruptio-org/face-compare-service/internal/api/compare"
	"github.com/disruptio-org/face-compare-service/internal/entity"
	contextPkg "github.com/disruptio-org/face-compare-service/pkg/context"
	"github.com/disruptio-org/face-compare-service/pkg/response"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *compareService) CompareFaces(ctx context.Context, req entity.ComparisonRequest) (*entity.ComparisonResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	input, err := buildCompareFacesInput(req)
	if err != nil {
		return nil, response.Wrap(http.StatusBadRequest, err)
	}

	output, err := s.rekognition.CompareFacesWithContext(ctx, input)
	if err != nil {
		svcErr := compare.NewServiceError(err)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"kind":       svcErr.Kind,
			"error":      svcErr.Message,
		}).Error("Face comparison failed")
		return nil, svcErr
	}

	result := projectResult(output)

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"matches":         len(result.Matches),
		"unmatched_faces": result.UnmatchedFaces,
	}).Debug("Face comparison completed")

	return result, nil
}

func buildCompareFacesInput(req entity.ComparisonRequest) (*rekognition.CompareFacesInput, error) {
	mode, err := req.Mode()
	if err != nil {
		return nil, err
	}

	input := &rekognition.CompareFacesInput{
		SimilarityThreshold: aws.Float64(req.SimilarityThreshold),
	}

	switch mode {
	case entity.BytesMode:
		input.SourceImage = &rekognition.Image{Bytes: req.SourceBytes}
		input.TargetImage = &rekognition.Image{Bytes: req.TargetBytes}
	case entity.ReferenceMode:
		input.SourceImage = imageFromRef(req.SourceRef)
		input.TargetImage = imageFromRef(req.TargetRef)
	}

	return input, nil
}

func imageFromRef(ref *entity.ObjectRef) *rekognition.Image {
	return &rekognition.Image{
		S3Object: &rekognition.S3Object{
			Bucket: aws.String(ref.Bucket),
			Name:   aws.String(ref.Key),
		},
	}
}

// projectResult keeps matches in service order with similarity and box
// copied as returned; unmatched faces collapse to a count.
func projectResult(output *rekognition.CompareFacesOutput) *entity.ComparisonResult {
	if output == nil {
		return &entity.ComparisonResult{Matches: []entity.MatchEntry{}}
	}

	matches := make([]entity.MatchEntry, 0, len(output.FaceMatches))
	for _, m := range output.FaceMatches {
		if m == nil {
			continue
		}

		entry := entity.MatchEntry{
			Similarity: aws.Float64Value(m.Similarity),
		}
		if m.Face != nil && m.Face.BoundingBox != nil {
			box := m.Face.BoundingBox
			entry.BoundingBox = entity.BoundingBox{
				Left:   aws.Float64Value(box.Left),
				Top:    aws.Float64Value(box.Top),
				Width:  aws.Float64Value(box.Width),
				Height: aws.Float64Value(box.Height),
			}
		}
		matches = append(matches, entry)
	}

	return &entity.ComparisonResult{
		Matches:        matches,
		UnmatchedFaces: len(output.UnmatchedFaces),
	}
}
