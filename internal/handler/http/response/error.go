package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/todo"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/validator"
)

type Category string

const (
	CategoryValidation      Category = "validation"
	CategoryUnauthenticated Category = "unauthenticated"
	CategoryAuthorization   Category = "authorization"
	CategoryNotFound        Category = "not_found"
	CategoryInfrastructure  Category = "infrastructure"
)

// Classification is how an error is reported to the client.
type Classification struct {
	Category Category
	Status   int
	Message  string
}

const unexpectedErrorMessage = "An unexpected error occurred"

var knownErrors = []struct {
	err      error
	category Category
	status   int
}{
	// Attendance
	{attendance.ErrBlockedByLeave, CategoryValidation, http.StatusBadRequest},
	{attendance.ErrAlreadyPunchedIn, CategoryValidation, http.StatusBadRequest},
	{attendance.ErrNeedsPunchIn, CategoryValidation, http.StatusBadRequest},
	{attendance.ErrAlreadyPunchedOut, CategoryValidation, http.StatusBadRequest},
	{attendance.ErrUnsupportedKind, CategoryValidation, http.StatusBadRequest},
	{attendance.ErrStatusUnavailable, CategoryInfrastructure, http.StatusInternalServerError},
	{attendance.ErrPunchNotSaved, CategoryInfrastructure, http.StatusInternalServerError},

	// Leave calendar
	{leave.ErrInvalidYear, CategoryValidation, http.StatusBadRequest},
	{leave.ErrInvalidMonth, CategoryValidation, http.StatusBadRequest},
	{leave.ErrCalendarUnavailable, CategoryInfrastructure, http.StatusInternalServerError},

	// Todo
	{todo.ErrEmptyUpdate, CategoryValidation, http.StatusBadRequest},
	{todo.ErrTodoNotFound, CategoryNotFound, http.StatusNotFound},
	{todo.ErrProjectNotFound, CategoryNotFound, http.StatusNotFound},
	{todo.ErrTodoLocked, CategoryAuthorization, http.StatusForbidden},
	{todo.ErrNotAssignee, CategoryAuthorization, http.StatusForbidden},
	{todo.ErrDeleteNotAllowed, CategoryAuthorization, http.StatusForbidden},
	{todo.ErrAssignNotAllowed, CategoryAuthorization, http.StatusForbidden},

	// Dashboard
	{dashboard.ErrDashboardUnavailable, CategoryInfrastructure, http.StatusInternalServerError},

	// Users and auth
	{user.ErrRoleNotAllowed, CategoryAuthorization, http.StatusForbidden},
	{user.ErrInsufficientPermissions, CategoryAuthorization, http.StatusForbidden},
	{user.ErrUserNotFound, CategoryNotFound, http.StatusNotFound},
	{user.ErrUserEmailExists, CategoryValidation, http.StatusConflict},
	{auth.ErrInvalidCredentials, CategoryUnauthenticated, http.StatusUnauthorized},
	{auth.ErrInvalidToken, CategoryUnauthenticated, http.StatusUnauthorized},
	{auth.ErrMissingActor, CategoryUnauthenticated, http.StatusUnauthorized},
}

// Classify maps err onto one of the reporting categories. Unknown errors are
// infrastructure failures and get a generic message.
func Classify(err error) Classification {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return Classification{
			Category: CategoryValidation,
			Status:   http.StatusUnprocessableEntity,
			Message:  "Validation failed",
		}
	}

	for _, known := range knownErrors {
		if errors.Is(err, known.err) {
			return Classification{
				Category: known.category,
				Status:   known.status,
				Message:  known.err.Error(),
			}
		}
	}

	return Classification{
		Category: CategoryInfrastructure,
		Status:   http.StatusInternalServerError,
		Message:  unexpectedErrorMessage,
	}
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, now time.Time, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, now, validationErrs.ToMap())
		return
	}

	c := Classify(err)
	Error(w, now, c.Status, c.Message)
}
