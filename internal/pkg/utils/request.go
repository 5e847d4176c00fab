package utils

import (
	"io"
	"net/http"
	"wellness-wizard/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const maxRequestBodyBytes = 32 << 20

// ParseJSONBody decodes the request body into dst and validates it.
// An empty body decodes to the zero value of dst.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, dst); err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
