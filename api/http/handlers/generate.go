package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ai-service/api/http/presenter"
	"github.com/artem13815/ai-service/pkg/generate"
)

type GenerateHandler struct {
	uc generate.UseCase
}

func NewGenerateHandler(uc generate.UseCase) *GenerateHandler { return &GenerateHandler{uc: uc} }

// Generate возвращает один ответ на сообщение пациента.
// @Summary Сгенерировать ответ пациенту
// @Description Ответ приходит от настроенного провайдера; при его сбое используется локальный mock-ответ.
// @Tags    generate
// @Accept  json
// @Produce json
// @Param   input body generate.Request true "Сообщение и необязательный контекст пациента"
// @Success 200 {object} generate.Response
// @Failure 422 {object} presenter.ValidationErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /generate [post]
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	var req generate.Request
	if err := c.BodyParser(&req); err != nil {
		return presenter.Validation(c, []generate.FieldError{{
			Field:   "body",
			Rule:    "json",
			Message: "невалидный JSON",
		}})
	}
	out, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		if verr, ok := generate.IsValidation(err); ok {
			return presenter.Validation(c, verr.Fields)
		}
		// unclassified: leave it to the app error handler
		return err
	}
	return presenter.JSON(c, http.StatusOK, out)
}
