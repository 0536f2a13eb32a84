package dto

// ErrorResponse represents an error in the API response
// @Description Error information
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
