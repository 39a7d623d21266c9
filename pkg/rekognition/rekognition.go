package rekognition

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rekognition"
)

const DefaultRegion = "us-east-1"

// ItfRekognition is the part of the Rekognition API the service calls.
type ItfRekognition interface {
	CompareFacesWithContext(ctx aws.Context, input *rekognition.CompareFacesInput, opts ...request.Option) (*rekognition.CompareFacesOutput, error)
}

var _ ItfRekognition = (*rekognition.Rekognition)(nil)

type Config struct {
	Region string
}

func ConfigFromEnv() Config {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = DefaultRegion
	}

	return Config{Region: region}
}

// New builds a Rekognition client. Credentials are resolved by the SDK's
// default chain; the client is safe for concurrent use.
func New(cfg Config) (ItfRekognition, error) {
	sess, err := newSession(cfg)
	if err != nil {
		return nil, err
	}

	return rekognition.New(sess), nil
}

func newSession(cfg Config) (*session.Session, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config: aws.Config{
			Region: aws.String(region),
		},
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}
