package handlers

import (
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	SearchHandler     *SearchHandler
	SignalHandler     *SignalHandler
	EvaluationHandler *EvaluationHandler
	HealthHandler     *HealthHandler
}

func NewAppHandlers(
	v *validator.Validator,
	searchService services.SearchService,
	signalService services.SignalService,
	evaluationService services.EvaluationService,
) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		SearchHandler:     NewSearchHandler(base, searchService),
		SignalHandler:     NewSignalHandler(base, signalService),
		EvaluationHandler: NewEvaluationHandler(base, evaluationService),
		HealthHandler:     NewHealthHandler(base),
	}
}
