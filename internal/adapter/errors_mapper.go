// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/go-resty/resty/v2"
)

// outcome names the sentinels a route answers with on 404 and 409.
type outcome struct {
	notFound error
	conflict error
}

var (
	boxRoute  = outcome{notFound: inventory.ErrBoxNotFound, conflict: inventory.ErrBoxCapacityExceeded}
	itemRoute = outcome{notFound: inventory.ErrItemNotFound, conflict: inventory.ErrItemCapacityExceeded}
)

func mapHTTPError(resp *resty.Response, o outcome) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	switch {
	case status == http.StatusBadRequest:
		msg = strings.TrimPrefix(msg, inventory.ErrValidation.Error()+": ")
		return fmt.Errorf("%w: %s", inventory.ErrValidation, msg)
	case status == http.StatusNotFound && o.notFound != nil:
		return fmt.Errorf("%w: %s", o.notFound, msg)
	case status == http.StatusConflict && o.conflict != nil:
		return fmt.Errorf("%w: %s", o.conflict, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerError, status, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, status, msg)
	}
}

// errorMessage extracts the text of a JSON error body, falling back to the
// raw body and then to the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var er utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &er); err == nil && er.Error != "" {
		return er.Error
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
