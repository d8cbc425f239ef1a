package auth

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCreds      = "INVALID_CREDENTIALS"
	TextCodeTokenExpired      = "TOKEN_EXPIRED"
	TextCodeTokenBadSignature = "TOKEN_SIGNATURE_INVALID"
	TextCodeTokenMalformed    = "TOKEN_MALFORMED"
	TextCodeEmptyPassword     = "EMPTY_PASSWORD"
	TextCodeHashFormat        = "HASH_FORMAT_INVALID"
	TextCodeIdentityNotFound  = "IDENTITY_NOT_FOUND"
)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode(TextCodeIdentityNotFound)

// ErrMismatchedHashAndPassword covers both an unknown email and a wrong
// password so callers cannot tell the two apart.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeInvalidCreds)

// ErrNoEmptyString rejects empty passwords before hashing
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode(TextCodeEmptyPassword)

// ErrHashFormat means the stored digest could not be parsed. Login treats it
// as a verification failure so the distinction never reaches the client.
var ErrHashFormat = errors.New("stored password digest is malformed", errors.CategoryInternal).
	WithCode(errors.CodeInternal).
	WithTextCode(TextCodeHashFormat)

// ErrTokenExpired is returned when the embedded expiry has passed
var ErrTokenExpired = errors.New("authentication token is expired", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenExpired)

// ErrTokenSignatureInvalid covers tampered tokens and wrong-secret signatures
var ErrTokenSignatureInvalid = errors.New("authentication token signature is invalid", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenBadSignature)

// ErrTokenMalformed is returned when the token cannot be parsed at all
var ErrTokenMalformed = errors.New("authentication token is malformed", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenMalformed)
