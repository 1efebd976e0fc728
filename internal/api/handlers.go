package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/astroqml/galaxyq/internal/classifier"
	"github.com/astroqml/galaxyq/internal/preprocess"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:     "ok",
		NumQubits:  s.params.NumQubits,
		NumClasses: s.params.NumClasses,
	})
}

// handleClassify takes raw image bytes as the request body and answers with
// the predicted class under the loaded parameters.
func (s *Server) handleClassify(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "request body must contain image bytes")
	}

	features, err := preprocess.DecodeFeatures(body, s.params.ImageSize)
	if err != nil {
		if errors.Is(err, preprocess.ErrZeroNorm) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "image carries no luminance")
		}
		return fiber.NewError(fiber.StatusBadRequest, "unable to decode image: "+err.Error())
	}

	class, err := classifier.Classify(features, s.params.Theta, s.topo, s.params.NumClasses)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "classification failed: "+err.Error())
	}

	name := ""
	if class < len(s.params.ClassNames) {
		name = s.params.ClassNames[class]
	}

	log.Info().Int("class_index", class).Str("class_name", name).Int("body_bytes", len(body)).Msg("image classified")
	return c.JSON(ClassifyResponse{ClassIndex: class, ClassName: name})
}
