package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spendwise/spendwise-client/models"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := parseDetail(resp.Body())

	switch {
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrServer, code)
	case detail != "":
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %s", ErrValidation, http.StatusText(code))
	}
}

// parseDetail extracts the "detail" field the server includes in 4xx bodies.
// Non-JSON or empty bodies yield an empty string.
func parseDetail(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return ""
	}
	return strings.TrimSpace(er.Detail)
}
