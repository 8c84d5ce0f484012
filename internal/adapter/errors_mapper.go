// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-stock-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError turns a non-2xx response into a sentinel error. 400 and 422
// bodies of the form {"field": "...", "message": "..."} additionally wrap a
// *models.FieldError so that forms can highlight the offending input.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	sentinel, ok := statusErrors[code]
	if !ok {
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, body)
	}

	if code == http.StatusBadRequest || code == http.StatusUnprocessableEntity {
		if fe := decodeFieldError(resp.Body()); fe != nil {
			return fmt.Errorf("%w: %w", sentinel, fe)
		}
	}

	return fmt.Errorf("%w: %s", sentinel, body)
}

func decodeFieldError(body []byte) *models.FieldError {
	var fe models.FieldError
	if err := json.Unmarshal(body, &fe); err != nil {
		return nil
	}
	if fe.Message == "" {
		return nil
	}
	return &fe
}
