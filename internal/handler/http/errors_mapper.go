package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

// Error kinds reported in the "kind" field of every error body.
const (
	KindValidation      = "validation_error"
	KindUnauthenticated = "unauthenticated"
	KindForbidden       = "forbidden"
	KindNotFound        = "not_found"
	KindConflict        = "conflict"
	KindInternal        = "internal_error"
)

type errorClass struct {
	kind   string
	status int
}

// errorClasses is matched in order, so more specific sentinels come first.
var errorClasses = []struct {
	target error
	class  errorClass
}{
	{store.ErrUserAlreadyExists, errorClass{KindConflict, http.StatusBadRequest}},

	{service.ErrInvalidDataProvided, errorClass{KindValidation, http.StatusBadRequest}},
	{crypto.ErrPasswordTooLong, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidUsername, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidEmail, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrPasswordTooShort, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrPasswordTooLong, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidTaskLength, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidTaskCharset, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidTodoID, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrNoFieldsToUpdate, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidSkip, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidLimit, errorClass{KindValidation, http.StatusBadRequest}},
	{validators.ErrInvalidSortOrder, errorClass{KindValidation, http.StatusBadRequest}},
	{ErrInvalidJSON, errorClass{KindValidation, http.StatusBadRequest}},
	{ErrInvalidQueryParam, errorClass{KindValidation, http.StatusBadRequest}},
	{ErrInvalidPathParam, errorClass{KindValidation, http.StatusBadRequest}},

	{service.ErrUnauthenticated, errorClass{KindUnauthenticated, http.StatusUnauthorized}},
	{service.ErrInvalidCredentials, errorClass{KindUnauthenticated, http.StatusUnauthorized}},
	{service.ErrTooManyLoginAttempts, errorClass{KindUnauthenticated, http.StatusUnauthorized}},
	{service.ErrInvalidToken, errorClass{KindUnauthenticated, http.StatusUnauthorized}},

	{service.ErrForbidden, errorClass{KindForbidden, http.StatusForbidden}},

	{service.ErrTodoNotFound, errorClass{KindNotFound, http.StatusNotFound}},
	{store.ErrTodoNotFound, errorClass{KindNotFound, http.StatusNotFound}},
	{errRouteNotFound, errorClass{KindNotFound, http.StatusNotFound}},
}

func classifyError(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c.class
		}
	}
	return errorClass{KindInternal, http.StatusInternalServerError}
}

func statusFromError(err error) int {
	return classifyError(err).status
}

// writeError renders err as {"kind", "message"}. Internal errors are logged
// with their cause and reported to the client only as a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	class := classifyError(err)

	message := err.Error()
	switch class.kind {
	case KindInternal:
		log.Err(err).Msg("request failed with internal error")
		message = http.StatusText(http.StatusInternalServerError)
	case KindUnauthenticated:
		if errors.Is(err, service.ErrUnauthenticated) {
			message = service.ErrUnauthenticated.Error()
		}
		w.Header().Set("WWW-Authenticate", "Bearer")
		log.Debug().Err(err).Msg("request is not authenticated")
	case KindConflict:
		message = store.ErrUserAlreadyExists.Error()
		log.Debug().Err(err).Msg("request conflicts with existing data")
	default:
		log.Debug().Err(err).Str("kind", class.kind).Msg("request rejected")
	}

	utils.WriteError(w, class.kind, message, class.status)
}
