package config

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const defaultBodyLimitMB = 50

func NewFiber(logger *logrus.Logger, appName string) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           appName,
			BodyLimit:         bodyLimit(logger),
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: true,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
		})

	return app
}

func bodyLimit(logger *logrus.Logger) int {
	raw := os.Getenv("APP_BODY_LIMIT_MB")
	if raw == "" {
		return defaultBodyLimitMB * 1024 * 1024
	}

	mb, err := strconv.Atoi(raw)
	if err != nil || mb <= 0 {
		logger.Warnf("Invalid APP_BODY_LIMIT_MB %q, using %dMB", raw, defaultBodyLimitMB)
		return defaultBodyLimitMB * 1024 * 1024
	}

	return mb * 1024 * 1024
}
