package res

import "github.com/gofiber/fiber/v2/utils"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
}

func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{Status: utils.StatusMessage(code), StatusCode: code, Error: message}
}
