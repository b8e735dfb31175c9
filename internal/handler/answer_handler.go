package handler

import (
	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AnswerHandler struct {
	answerService service.AnswerService
}

func NewAnswerHandler(answerService service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// CheckAnswer records and scores a submitted answer.
// @Summary Check an answer
// @Description Records the answer, then scores it. mcq answers return isCorrect, open-ended answers return percentageSimilar (0-30).
// @Tags answer
// @Accept json
// @Produce json
// @Param request body dto.CheckAnswerRequest true "Answer to check"
// @Success 200 {object} dto.MCQResultResponse
// @Success 201 {object} dto.MessageResponse "Answer recorded without a score"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /answer [post]
func (h *AnswerHandler) CheckAnswer(c *fiber.Ctx) error {
	var req dto.CheckAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	result, err := h.answerService.Evaluate(c.UserContext(), req.QuestionID, req.UserInput)
	if err != nil {
		return err
	}

	switch {
	case result.IsCorrect != nil:
		return c.JSON(dto.MCQResultResponse{IsCorrect: *result.IsCorrect})
	case result.PercentageSimilar != nil:
		return c.JSON(dto.OpenEndedResultResponse{PercentageSimilar: *result.PercentageSimilar})
	default:
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "OK"})
	}
}
