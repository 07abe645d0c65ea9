package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch_backend/internal/services"
)

type SignalHandler struct {
	*BaseHandler
	signalService services.SignalService
}

func NewSignalHandler(base *BaseHandler, signalService services.SignalService) *SignalHandler {
	return &SignalHandler{
		BaseHandler:   base,
		signalService: signalService,
	}
}

func (h *SignalHandler) RegisterRoutes(r *gin.RouterGroup) {
	signals := r.Group("/signals")
	{
		signals.GET("/candidates/:candidateId", h.GetCandidateSignals)
		signals.GET("/recruiters/:companyId", h.GetRecruiterSignals)
	}
}

// GetCandidateSignals recomputes and returns the candidate's snapshot.
func (h *SignalHandler) GetCandidateSignals(c *gin.Context) {
	snapshot, err := h.signalService.ComputeCandidateSignals(c.Request.Context(), c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetRecruiterSignals recomputes and returns the company-level snapshot.
func (h *SignalHandler) GetRecruiterSignals(c *gin.Context) {
	snapshot, err := h.signalService.ComputeRecruiterSignals(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
