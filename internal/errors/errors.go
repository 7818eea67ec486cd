package errors

import (
	"errors"
	"fmt"
)

// Reason is the structured cause of a rejected action. It is kept for logs and
// tests; clients see one uniform error class.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotFound         Reason = "NotFound"
	ReasonWrongTeamType    Reason = "WrongTeamType"
	ReasonCrossTenant      Reason = "CrossTenant"
	ReasonForbidden        Reason = "Forbidden"
	ReasonAlreadyRelated   Reason = "AlreadyRelated"
	ReasonAlreadyExists    Reason = "AlreadyExists"
	ReasonValidationFailed Reason = "ValidationFailed"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this division"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is returned when the actor lacks the role an action needs
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// WrongTeamTypeError is returned when a ref resolves to a team of another type
// than the operation expects
type WrongTeamTypeError struct {
	Expected string
	Actual   string
}

func (e *WrongTeamTypeError) Error() string {
	return fmt.Sprintf("team is a %s, expected a %s", e.Actual, e.Expected)
}

// CrossTenantError is returned when members of a chain belong to different contests
type CrossTenantError struct {
	Entity string
}

func (e *CrossTenantError) Error() string {
	return fmt.Sprintf("%s does not belong to this contest", e.Entity)
}

// AlreadyRelatedError is returned when a user is already related to a team
type AlreadyRelatedError struct {
	Message string
}

func (e *AlreadyRelatedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "user is already related to this team"
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrContestNotFound     = &NotFoundError{Entity: "contest"}
	ErrDivisionNotFound    = &NotFoundError{Entity: "division"}
	ErrCollectionNotFound  = &NotFoundError{Entity: "collection"}
	ErrSubjectNotFound     = &NotFoundError{Entity: "subject"}
	ErrImpressionNotFound  = &NotFoundError{Entity: "impression"}
	ErrJoinRequestNotFound = &NotFoundError{Entity: "join request"}
	ErrRelationNotFound    = &NotFoundError{Entity: "relation"}
	ErrAssignmentNotFound  = &NotFoundError{Entity: "collection-division assignment"}
)

// Already Exists Errors
var (
	ErrTeamHandleExists   = &AlreadyExistsError{Entity: "team", Context: "with this handle"}
	ErrJoinRequestExists  = &AlreadyExistsError{Entity: "join request", Context: "for this role"}
	ErrAssignmentExists   = &AlreadyExistsError{Entity: "collection-division assignment", Context: ""}
	ErrAlreadyInDivision  = &AlreadyExistsError{Entity: "division membership", Context: "for this division"}
	ErrUserAlreadyRelated = &AlreadyRelatedError{}
)

// Authorization Errors
var (
	ErrForbidden          = &AuthorizationError{Message: "not allowed to perform this action"}
	ErrOwnerOnly          = &AuthorizationError{Message: "only the contest owner can perform this action"}
	ErrNotDivisionLeader  = &AuthorizationError{Message: "user is not a leader of this division"}
	ErrNotContestMember   = &AuthorizationError{Message: "user is not a participant of this contest"}
	ErrDivisionUnassigned = &AuthorizationError{Message: "division is not assigned to this collection"}
)

// Authentication Errors
var (
	ErrMissingActor = &AuthenticationError{Message: "authenticated user not found in context"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
)

// Team Type Errors
var (
	ErrNotAContest  = &WrongTeamTypeError{Expected: "contest", Actual: "non-contest team"}
	ErrNotADivision = &WrongTeamTypeError{Expected: "division", Actual: "non-division team"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsWrongTeamType checks if an error is a WrongTeamTypeError
func IsWrongTeamType(err error) bool {
	var typeErr *WrongTeamTypeError
	return errors.As(err, &typeErr)
}

// IsCrossTenant checks if an error is a CrossTenantError
func IsCrossTenant(err error) bool {
	var tenantErr *CrossTenantError
	return errors.As(err, &tenantErr)
}

// IsAlreadyRelated checks if an error is an AlreadyRelatedError
func IsAlreadyRelated(err error) bool {
	var relatedErr *AlreadyRelatedError
	return errors.As(err, &relatedErr)
}

// ReasonOf returns the structured deny reason carried by err, or ReasonNone when
// err is not a denial (nil or an unexpected failure)
func ReasonOf(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case IsNotFound(err):
		return ReasonNotFound
	case IsWrongTeamType(err):
		return ReasonWrongTeamType
	case IsCrossTenant(err):
		return ReasonCrossTenant
	case IsAuthorization(err):
		return ReasonForbidden
	case IsAlreadyRelated(err):
		return ReasonAlreadyRelated
	case IsAlreadyExists(err):
		return ReasonAlreadyExists
	case IsValidation(err):
		return ReasonValidationFailed
	}
	return ReasonNone
}

// IsDenial reports whether err is a deterministic rejection of the input or
// state, as opposed to an unexpected failure
func IsDenial(err error) bool {
	return ReasonOf(err) != ReasonNone
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewWrongTeamTypeError creates a new WrongTeamTypeError
func NewWrongTeamTypeError(expected, actual string) error {
	return &WrongTeamTypeError{Expected: expected, Actual: actual}
}

// NewCrossTenantError creates a new CrossTenantError
func NewCrossTenantError(entity string) error {
	return &CrossTenantError{Entity: entity}
}

// NewAlreadyRelatedError creates a new AlreadyRelatedError
func NewAlreadyRelatedError(message string) error {
	return &AlreadyRelatedError{Message: message}
}
