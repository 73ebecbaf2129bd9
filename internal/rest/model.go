package rest

// TeachersRequest is the query of GET /api/teachers. Search takes precedence
// over Department.
type TeachersRequest struct {
	Search     string
	Department string
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
