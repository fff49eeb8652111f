package shared

// APIError is the JSON body returned for failures that happen before a
// stream opens (bad request, missing landing page).
type APIError struct {
	Message string `json:"message"`
	Object  string `json:"object"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}
