package handler

import "encoding/json"

// errorResponse documents the error envelope for swagger; the actual envelope
// is rendered by the central HTTP error handler.
type errorResponse struct {
	Message string `json:"message"`
}

// createCertificationRequest is the POST /certifications body. Budget is kept
// as json.Number so the service decides between "missing" and "not a positive
// number" in the documented order. Any employeeName in the body is ignored;
// ownership always comes from the authenticated caller.
type createCertificationRequest struct {
	Description  string      `json:"description"`
	Budget       json.Number `json:"budget"`
	ExpectedDate string      `json:"expectedDate"`
}

// updateStatusRequest is the PATCH /certifications/:id/status body.
type updateStatusRequest struct {
	Status string `json:"status"`
}
