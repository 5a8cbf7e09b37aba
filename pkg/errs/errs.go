// Package errs defines the error kinds shared by every layer.
//
// Services return *Error values; the HTTP boundary maps the Kind to a status
// code and echoes Code to the client so it can pick a message.
package errs

import (
	"context"
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidInput
	KindPermissionDenied
	KindUnauthenticated
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidInput:
		return "invalid_input"
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// Stable codes returned to clients.
const (
	CodeRecipeNotFound            = "recipe_not_found"
	CodeUserNotFound              = "user_not_found"
	CodeIngredientNotFound        = "ingredient_not_found"
	CodeTagNotFound               = "tag_not_found"
	CodeFavoriteNotFound          = "recipe_not_in_favorite"
	CodeShoppingCartNotFound      = "recipe_not_in_shopping_cart"
	CodeSubscriptionNotFound      = "subscription_not_found"
	CodeFavoriteExists            = "recipe_in_favorite_exists"
	CodeShoppingCartExists        = "recipe_in_shopping_cart_exists"
	CodeSubscriptionExists        = "subscription_already_exists"
	CodeTagExists                 = "tag_exists"
	CodeSelfSubscribeForbidden    = "self_subscribe_forbidden"
	CodeInactiveTarget            = "inactive_user"
	CodeInvalidAmount             = "invalid_amount"
	CodeInvalidPagination         = "invalid_pagination"
	CodeInvalidRecipesLimit       = "invalid_recipes_limit"
	CodeInvalidField              = "invalid_field"
	CodeTagsRequired              = "tags_required"
	CodeTagsDuplicate             = "tags_duplicate"
	CodeTagsNotFound              = "tags_not_found"
	CodeIngredientsRequired       = "ingredients_required"
	CodeIngredientsDuplicate      = "ingredients_duplicate"
	CodeIngredientsNotFound       = "ingredients_not_found"
	CodeNotAuthor                 = "not_recipe_author"
	CodeInactiveUser              = "inactive_account"
	CodeAuthenticationRequired    = "authentication_required"
	CodeInfrastructureUnavailable = "infrastructure_unavailable"
)

type Error struct {
	Kind  Kind
	Code  string
	Msg   string
	Field string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Code
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether repeating the call may succeed.
func (e *Error) Retryable() bool { return e.Kind == KindInfrastructure }

func NotFound(code, msg string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Msg: msg}
}

func AlreadyExists(code, msg string) *Error {
	return &Error{Kind: KindAlreadyExists, Code: code, Msg: msg}
}

func Invalid(code, msg string) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Msg: msg}
}

// InvalidField is an InvalidInput error attached to one request field.
func InvalidField(field, code, msg string) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Msg: msg, Field: field}
}

func Forbidden(code, msg string) *Error {
	return &Error{Kind: KindPermissionDenied, Code: code, Msg: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Code: CodeAuthenticationRequired, Msg: msg}
}

// Infra wraps a store failure. Context cancellation is returned unchanged.
func Infra(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindInfrastructure, Code: CodeInfrastructureUnavailable, Msg: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// CodeOf returns the stable code of the first *Error in err's chain.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
