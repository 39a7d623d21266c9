package compareService

import (
	"github.com/disruptio-org/face-compare-service/internal/entity"
	"github.com/disruptio-org/face-compare-service/pkg/rekognition"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICompareService interface {
	CompareFaces(ctx context.Context, req entity.ComparisonRequest) (*entity.ComparisonResult, error)
}

type compareService struct {
	log         *logrus.Logger
	rekognition rekognition.ItfRekognition
}

func NewCompareService(
	log *logrus.Logger,
	rekognition rekognition.ItfRekognition,
) ICompareService {
	return &compareService{
		log:         log,
		rekognition: rekognition,
	}
}
