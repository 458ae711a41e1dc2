package domain

import "go.trai.ch/zerr"

var (
	// ErrResourceNotFound is returned when a requested resource id is not in the store.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrWorkspaceNotFound is returned when a directory holds no workspace content file.
	ErrWorkspaceNotFound = zerr.New("could not find workspace content file")

	// ErrContentReadFailed is returned when the workspace content file cannot be read.
	ErrContentReadFailed = zerr.New("failed to read workspace content file")

	// ErrContentParseFailed is returned when the workspace content file cannot be parsed.
	ErrContentParseFailed = zerr.New("failed to parse workspace content file")

	// ErrPropertiesReadFailed is returned when the workspace properties file cannot be read.
	ErrPropertiesReadFailed = zerr.New("failed to read workspace properties file")

	// ErrPropertiesParseFailed is returned when the workspace properties file cannot be parsed.
	ErrPropertiesParseFailed = zerr.New("failed to parse workspace properties file")

	// ErrDuplicateResourceID is returned when workspace content declares the same id twice.
	ErrDuplicateResourceID = zerr.New("duplicate resource id in workspace content")

	// ErrMissingResourceID is returned when a content entry has no id.
	ErrMissingResourceID = zerr.New("resource entry is missing an id")

	// ErrSaveMarshalFailed is returned when a workspace snapshot cannot be marshaled.
	ErrSaveMarshalFailed = zerr.New("failed to marshal workspace snapshot")

	// ErrSaveWriteFailed is returned when a workspace file cannot be written.
	ErrSaveWriteFailed = zerr.New("failed to write workspace file")

	// ErrUnknownURIScheme is returned when a file reference uses an unmapped scheme.
	ErrUnknownURIScheme = zerr.New("unknown resource URI scheme")

	// ErrValidationFailed is returned by a check run when resources remain invalid.
	ErrValidationFailed = zerr.New("workspace validation failed")

	// ErrConfigReadFailed is returned when the tool config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the tool config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
