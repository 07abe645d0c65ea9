package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch_backend/internal/services"
)

type EvaluationHandler struct {
	*BaseHandler
	evaluationService services.EvaluationService
}

func NewEvaluationHandler(base *BaseHandler, evaluationService services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		BaseHandler:       base,
		evaluationService: evaluationService,
	}
}

func (h *EvaluationHandler) RegisterRoutes(r *gin.RouterGroup) {
	evaluations := r.Group("/evaluations")
	{
		evaluations.POST("/applications/:applicationId", h.EvaluateApplication)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("/:jobId/ranked-candidates", h.GetRankedCandidates)
	}
}

// EvaluateApplication invokes the oracle for one application, persists the
// verdict and rebuilds the job ranking.
func (h *EvaluationHandler) EvaluateApplication(c *gin.Context) {
	evaluation, err := h.evaluationService.EvaluateApplication(c.Request.Context(), c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

// GetRankedCandidates returns the enriched stored ranking for a job.
func (h *EvaluationHandler) GetRankedCandidates(c *gin.Context) {
	ranking, err := h.evaluationService.GetRankedCandidates(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
