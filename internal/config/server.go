package config

import (
	"fmt"
	"os"
	"time"

	"github.com/disruptio-org/face-compare-service/internal/api/compare"
	compareHandler "github.com/disruptio-org/face-compare-service/internal/api/compare/handler"
	compareService "github.com/disruptio-org/face-compare-service/internal/api/compare/service"
	"github.com/disruptio-org/face-compare-service/internal/middleware"
	"github.com/disruptio-org/face-compare-service/pkg/rekognition"
	"github.com/disruptio-org/face-compare-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine            *fiber.App
	log               *logrus.Logger
	middleware        middleware.Middleware
	validator         *validator.Validate
	utils             utils.IUtils
	handlers          []handler
	rekognitionClient rekognition.ItfRekognition
	variant           compare.Variant
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{
		utils: utils.New(),
	}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.rekognitionClient == nil {
		return nil, fmt.Errorf("rekognition client is required")
	}
	if server.variant == "" {
		return nil, fmt.Errorf("compare variant is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithVariant(variant compare.Variant) ServerOption {
	return func(s *Server) error {
		switch variant {
		case compare.UploadVariant, compare.ReferenceVariant:
			s.variant = variant
			return nil
		default:
			return fmt.Errorf("unknown compare variant %q", variant)
		}
	}
}

// WithRekognitionClient injects an existing client. It is mainly useful in
// tests; binaries use WithRekognitionFromEnv.
func WithRekognitionClient(client rekognition.ItfRekognition) ServerOption {
	return func(s *Server) error {
		s.rekognitionClient = client
		return nil
	}
}

func WithRekognitionFromEnv() ServerOption {
	return func(s *Server) error {
		cfg := rekognition.ConfigFromEnv()
		client, err := rekognition.New(cfg)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize Rekognition client: %v", err)
			}
			return fmt.Errorf("failed to create Rekognition client: %w", err)
		}
		if s.log != nil {
			s.log.Infof("Rekognition client ready in region %s", cfg.Region)
		}
		s.rekognitionClient = client
		return nil
	}
}

func (s *Server) RegisterHandler() {
	compareServices := compareService.NewCompareService(s.log, s.rekognitionClient)
	compareHandlers := compareHandler.New(s.log, s.validator, s.middleware, compareServices, s.utils, s.variant)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.setupHealthCheck()
	s.handlers = append(s.handlers, compareHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	s.log.Infof("Starting %s variant on port %s", s.variant, port)

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.engine.ShutdownWithTimeout(timeout)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
