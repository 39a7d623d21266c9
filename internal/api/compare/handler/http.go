package compareHandler

import (
	"github.com/disruptio-org/face-compare-service/internal/api/compare"
	compareService "github.com/disruptio-org/face-compare-service/internal/api/compare/service"
	"github.com/disruptio-org/face-compare-service/internal/middleware"
	"github.com/disruptio-org/face-compare-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CompareHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	compareService compareService.ICompareService
	utils          utils.IUtils
	variant        compare.Variant
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs compareService.ICompareService,
	utils utils.IUtils,
	variant compare.Variant,
) *CompareHandler {
	return &CompareHandler{
		compareService: cs,
		log:            log,
		validator:      validator,
		middleware:     middleware,
		utils:          utils,
		variant:        variant,
	}
}

// Start mounts the comparison route of the deployed variant only.
func (h *CompareHandler) Start(srv fiber.Router) {
	switch h.variant {
	case compare.ReferenceVariant:
		srv.Post("/compare_faces", h.CompareReferenced)
	default:
		srv.Post("/compare_faces", h.CompareUploaded)
	}
}
