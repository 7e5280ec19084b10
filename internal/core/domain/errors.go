package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrBlogNotFound         = errors.New("blog not found")
	ErrCategoryNotFound     = errors.New("category not found")
)

var (
	ErrDuplicateRegistration = errors.New("already registered for this event")
	ErrCapacityExceeded      = errors.New("event is already full")
	ErrAlreadyCompleted      = errors.New("payment already completed")
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied")
)

var (
	ErrValidation = errors.New("validation error")
	ErrDependency = errors.New("dependency failure")
)

// Kind lets callers branch on the class of a failure without matching
// individual sentinels.
type Kind string

const (
	KindNotFound              Kind = "NOT_FOUND"
	KindDuplicateRegistration Kind = "DUPLICATE_REGISTRATION"
	KindCapacityExceeded      Kind = "CAPACITY_EXCEEDED"
	KindAlreadyCompleted      Kind = "ALREADY_COMPLETED"
	KindValidation            Kind = "VALIDATION_ERROR"
	KindDependencyFailure     Kind = "DEPENDENCY_FAILURE"
	KindUnauthorized          Kind = "UNAUTHORIZED"
	KindForbidden             Kind = "FORBIDDEN"
	KindConflict              Kind = "CONFLICT"
	KindInternal              Kind = "INTERNAL_ERROR"
)

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindNotFound, []error{ErrUserNotFound, ErrEventNotFound, ErrRegistrationNotFound, ErrBlogNotFound, ErrCategoryNotFound}},
	{KindDuplicateRegistration, []error{ErrDuplicateRegistration}},
	{KindCapacityExceeded, []error{ErrCapacityExceeded}},
	{KindAlreadyCompleted, []error{ErrAlreadyCompleted}},
	{KindValidation, []error{ErrValidation}},
	{KindDependencyFailure, []error{ErrDependency}},
	{KindUnauthorized, []error{ErrInvalidCredentials, ErrInvalidToken}},
	{KindForbidden, []error{ErrForbidden}},
	{KindConflict, []error{ErrEmailTaken, ErrCategoryExists}},
}

// KindOf classifies err. Anything not wrapping a known sentinel is internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}
	return KindInternal
}
