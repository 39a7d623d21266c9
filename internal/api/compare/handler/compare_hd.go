package compareHandler

import (
	"fmt"
	"strconv"

	"github.com/disruptio-org/face-compare-service/internal/api/compare"
	"github.com/disruptio-org/face-compare-service/internal/entity"
	contextPkg "github.com/disruptio-org/face-compare-service/pkg/context"
	"github.com/disruptio-org/face-compare-service/pkg/handlerUtil"
	"github.com/disruptio-org/face-compare-service/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (h *CompareHandler) CompareUploaded(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing face comparison upload")

	threshold, err := parseThreshold(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	sourceFile, err := ctx.FormFile(compare.SourceImageField)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, fmt.Errorf("%w: %v", compare.ErrMissingSourceImage, err), ctx.Path())
	}

	targetFile, err := ctx.FormFile(compare.TargetImageField)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, fmt.Errorf("%w: %v", compare.ErrMissingTargetImage, err), ctx.Path())
	}

	sourceBytes, err := h.utils.ReadFormFile(sourceFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_source_image")
	}

	targetBytes, err := h.utils.ReadFormFile(targetFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_target_image")
	}

	h.log.WithFields(log.Fields{
		"request_id":  requestID,
		"source_size": len(sourceBytes),
		"target_size": len(targetBytes),
		"threshold":   threshold,
	}).Debug("Uploaded images read")

	req := entity.NewBytesComparison(sourceBytes, targetBytes, threshold)

	return h.compare(ctx, errHandler, requestID, req)
}

func (h *CompareHandler) CompareReferenced(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing face comparison by reference")

	var body compare.ReferenceCompareRequest
	if err := ctx.BodyParser(&body); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(body); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return h.compare(ctx, errHandler, requestID, body.ToComparison())
}

func (h *CompareHandler) compare(ctx *fiber.Ctx, errHandler *handlerUtil.ErrorHandler, requestID string, req entity.ComparisonRequest) error {
	result, err := h.compareService.CompareFaces(contextPkg.FromFiberCtx(ctx), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "compare_faces")
	}

	h.log.WithFields(log.Fields{
		"request_id":      requestID,
		"path":            ctx.Path(),
		"matches":         len(result.Matches),
		"unmatched_faces": result.UnmatchedFaces,
	}).Info("Face comparison successful")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

// parseThreshold reads similarity_threshold from the query string, then the
// form, falling back to the default when neither carries it.
func parseThreshold(ctx *fiber.Ctx) (float64, error) {
	raw := ctx.Query(compare.SimilarityThresholdField)
	if raw == "" {
		raw = ctx.FormValue(compare.SimilarityThresholdField)
	}
	if raw == "" {
		return entity.DefaultSimilarityThreshold, nil
	}

	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", compare.ErrInvalidThreshold, raw)
	}

	return threshold, nil
}
