package v1

import (
	"net/http"

	"go-futurejob-backend/internal/delivery/http/response"
	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	careerUC domain.CareerUsecase
}

func NewQuizHandler(protected *gin.RouterGroup, careerUC domain.CareerUsecase) {
	handler := &QuizHandler{careerUC: careerUC}

	quiz := protected.Group("/quiz")
	{
		quiz.GET("/questions", handler.Questions)
		quiz.POST("/predict", handler.Predict)
	}
}

// Questions godoc
// @Summary      Quiz questions
// @Description  Returns the fixed yes/no question bank in display order.
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /quiz/questions [get]
// @Security     BearerAuth
func (h *QuizHandler) Questions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Quiz questions", gin.H{
		"questions": h.careerUC.Questions(),
	})
}

type PredictRequest struct {
	// Answers maps a question tag to the number of "Yes" answers that
	// produced it. With the current bank the counts are 0 or 1.
	Answers map[string]int `json:"answers" binding:"required"`
}

// Predict godoc
// @Summary      Predict careers
// @Description  Scores the quiz answers against the career catalog and returns the top 5 matches.
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        answers  body      PredictRequest  true  "Per-tag yes counts"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /quiz/predict [post]
// @Security     BearerAuth
func (h *QuizHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	matches := h.careerUC.Predict(req.Answers)

	response.Success(c, http.StatusOK, "Suggested careers", gin.H{
		"matches": matches,
	})
}
