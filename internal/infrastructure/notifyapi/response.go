package notifyapi

import (
	"encoding/json"

	"github.com/go-notify-client/internal/domain"
)

// Metadata is the status information a Transport reports for a response.
// Code is nil when the transport could not determine a status code.
type Metadata struct {
	Status bool
	Code   *int
}

// Response is what a Transport returns. A nil Body means no body was received.
type Response struct {
	Metadata Metadata
	Body     []byte
}

// StatusCode returns a pointer to code, for building Metadata.
func StatusCode(code int) *int { return &code }

// Check classifies resp without decoding it. It is used by operations whose
// result carries no payload.
func Check(resp *Response) error {
	if resp == nil {
		return domain.ErrInvalidResponse
	}
	if !resp.Metadata.Status {
		if resp.Metadata.Code != nil {
			return &domain.ServerError{Code: *resp.Metadata.Code, Body: resp.Body}
		}
		return domain.ErrInvalidResponse
	}
	if resp.Body == nil {
		return domain.ErrInvalidResponse
	}
	return nil
}

// Decode classifies resp and parses its body as T.
func Decode[T any](resp *Response) (T, error) {
	var out T
	if err := Check(resp); err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		var zero T
		return zero, &domain.DecodingError{Cause: err}
	}
	return out, nil
}
