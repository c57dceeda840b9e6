package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artem13815/ai-service/api/http/presenter"
	"github.com/artem13815/ai-service/pkg/requestid"
)

// NewErrorHandler maps fiber errors to their status and everything else to
// a logged 500. The process keeps serving.
func NewErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return presenter.Error(c, fe.Code, fe.Message)
		}
		log.Error().
			Err(err).
			Str("path", c.Path()).
			Str("request_id", requestid.FromContext(c.UserContext())).
			Msg("unhandled error")
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}
