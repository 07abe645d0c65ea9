package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the domain errors of the search,
signal and evaluation pipeline.
*/

// ErrNotFound wraps a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 for the named domain.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the factory for logically invalid operations (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Search / Signals / Evaluations ---

// CandidateNotFound - the referenced candidate does not resolve.
func CandidateNotFound(err error) *AppError {
	return ErrNotFound(err, "candidate", "Candidate not found")
}

// JobNotFound - the referenced job does not resolve.
func JobNotFound(err error) *AppError {
	return ErrNotFound(err, "job", "Job not found")
}

// ApplicationNotFound - the referenced application does not resolve.
func ApplicationNotFound(err error) *AppError {
	return ErrNotFound(err, "application", "Application not found")
}

// CompanyNotFound - the referenced company does not resolve.
func CompanyNotFound(err error) *AppError {
	return ErrNotFound(err, "company", "Company not found")
}

// OracleError - the external scoring oracle failed or timed out. The
// evaluation is aborted with zero persistence, so the caller may retry.
func OracleError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "evaluation",
		"Candidate evaluation service is unavailable", http.StatusBadGateway)
}

// ErrMissingSubjectID - a signal computation was requested without a subject.
var ErrMissingSubjectID = New(
	CodeValidationFailed,
	"signals",
	"Subject id is required",
	http.StatusBadRequest,
)

// ErrMissingApplicationID - an evaluation was requested without an application.
var ErrMissingApplicationID = New(
	CodeValidationFailed,
	"evaluation",
	"Application id is required",
	http.StatusBadRequest,
)

// ErrMissingJobID - a ranking read was requested without a job.
var ErrMissingJobID = New(
	CodeValidationFailed,
	"ranking",
	"Job id is required",
	http.StatusBadRequest,
)
