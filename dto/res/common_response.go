package res

// CommonResponse wraps successful payloads; StatusCode mirrors the HTTP status.
type CommonResponse[T any] struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       T      `json:"data"`
}
