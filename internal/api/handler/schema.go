package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. The actual rendering happens in the central error handler; this
// type exists for the swagger annotations on handlers.
type errorResponse struct {
	Error string `json:"error"`
	Used  *int   `json:"used,omitempty"`
	Limit *int   `json:"limit,omitempty"`
}
