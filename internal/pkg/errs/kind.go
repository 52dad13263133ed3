package errs

import (
	"errors"
	"net/http"
)

// Kind is the externally visible class of a failure. Callers receive it next to
// the status code so that "upstream did not answer" can be told apart from
// "your data is invalid" without parsing messages.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindNotFound            Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindInternal            Kind = "internal"
)

// KindOf classifies err by walking its wrap chain.
func KindOf(err error) Kind {
	var rejected *UpstreamRejectedError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rejected):
		if rejected.Status == http.StatusNotFound {
			return KindNotFound
		}
		return KindValidation
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrObjectConflict):
		return KindConflict
	case errors.Is(err, ErrUpstreamUnavailable):
		return KindUpstreamUnavailable
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired):
		return KindValidation
	default:
		return KindInternal
	}
}

// StatusOf maps err to the numeric status class used by every transport.
func StatusOf(err error) int {
	return KindStatus(KindOf(err))
}

// KindStatus returns the status code of a kind.
func KindStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case "":
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// KindFromStatus is the inverse of KindStatus, used when decoding envelopes
// produced by other services that only carry a status.
func KindFromStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return KindUpstreamUnavailable
	default:
		return KindInternal
	}
}
