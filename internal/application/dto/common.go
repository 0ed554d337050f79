package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse body for deletes and other acknowledgements.
type SuccessResponse struct {
	Success bool `json:"success"`
}
