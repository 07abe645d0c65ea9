package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.GET("/candidates", h.SearchCandidates)
	}
}

// SearchCandidates runs the weighted text search over public candidate
// profiles. `q` is free text, `filter` a structured boolean expression.
func (h *SearchHandler) SearchCandidates(c *gin.Context) {
	var req dto.SearchCandidatesRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.searchService.SearchCandidates(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
