package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shreya029/foodshare/lifecycle"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "authorization token is missing",
		1001: "invalid token",
		1002: "admin role required",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "donation not found",
		1101: "request not found",
		1102: "food item not found",
		1103: "volunteer not found",
		1109: "record not found",

		1200: "this donation is not available",
		1201: "donation has no recipient to distribute to",
		1202: "food item already collected",
		1203: "food item can no longer be collected",
		1204: "record changed while it was being updated",
		1209: "conflicting state",

		1300: "not authorized to modify this record",
		1301: "only an admin may change a request status",

		1400: "missing required fields",
		1401: "unknown status",
		1402: "email already exists",
		1403: "reward label is required",
		1404: "nothing to update",
		1409: "validation failed",
	}

	errorInternalServer = errorJSON(999)
	errorMissingToken   = errorJSON(1000)
	errorInvalidToken   = errorJSON(1001)
	errorAdminRequired  = errorJSON(1002)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorDonationNotFound  = errorJSON(1100)
	errorRequestNotFound   = errorJSON(1101)
	errorFoodItemNotFound  = errorJSON(1102)
	errorVolunteerNotFound = errorJSON(1103)
	errorNotFound          = errorJSON(1109)

	errorDonationUnavailable = errorJSON(1200)
	errorNothingToDistribute = errorJSON(1201)
	errorAlreadyCollected    = errorJSON(1202)
	errorNotCollectable      = errorJSON(1203)
	errorConcurrentUpdate    = errorJSON(1204)
	errorConflict            = errorJSON(1209)

	errorForbidden          = errorJSON(1300)
	errorStatusChangeDenied = errorJSON(1301)

	errorMissingFields  = errorJSON(1400)
	errorInvalidStatus  = errorJSON(1401)
	errorDuplicateEmail = errorJSON(1402)
	errorEmptyReward    = errorJSON(1403)
	errorEmptyUpdate    = errorJSON(1404)
	errorValidation     = errorJSON(1409)
)

// domainErrors pairs the specific domain errors with their response. The
// first match wins; anything unmatched falls back to its failure class.
var domainErrors = []struct {
	err  error
	resp ErrorResponse
}{
	{lifecycle.ErrDonationNotFound, errorDonationNotFound},
	{lifecycle.ErrRequestNotFound, errorRequestNotFound},
	{lifecycle.ErrFoodItemNotFound, errorFoodItemNotFound},
	{lifecycle.ErrVolunteerNotFound, errorVolunteerNotFound},
	{lifecycle.ErrDonationUnavailable, errorDonationUnavailable},
	{lifecycle.ErrNothingToDistribute, errorNothingToDistribute},
	{lifecycle.ErrAlreadyCollected, errorAlreadyCollected},
	{lifecycle.ErrNotCollectable, errorNotCollectable},
	{lifecycle.ErrConcurrentUpdate, errorConcurrentUpdate},
	{lifecycle.ErrStatusChangeDenied, errorStatusChangeDenied},
	{lifecycle.ErrInvalidStatus, errorInvalidStatus},
	{lifecycle.ErrDuplicateEmail, errorDuplicateEmail},
	{lifecycle.ErrEmptyReward, errorEmptyReward},
	{lifecycle.ErrEmptyUpdate, errorEmptyUpdate},
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Code    int64    `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// messageID is the key of an error message in the i18n files
func (e ErrorResponse) messageID() string {
	return fmt.Sprintf("error_%d", e.Code)
}

// classify maps an error from the store or the lifecycle package to an
// http status and a response body
func classify(err error) (int, ErrorResponse) {
	var missing lifecycle.MissingFieldsError
	if errors.As(err, &missing) {
		resp := errorMissingFields
		resp.Fields = missing.Fields
		return http.StatusBadRequest, resp
	}

	status := statusOf(err)
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return status, d.resp
		}
	}

	switch status {
	case http.StatusNotFound:
		return status, errorNotFound
	case http.StatusForbidden:
		return status, errorForbidden
	case http.StatusConflict:
		return status, errorConflict
	case http.StatusBadRequest:
		return status, errorValidation
	}
	return http.StatusInternalServerError, errorInternalServer
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, lifecycle.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, lifecycle.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, lifecycle.ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
