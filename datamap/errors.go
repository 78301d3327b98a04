package datamap

import "errors"

var (
	// ErrNotFound is returned when no record exists for the requested identifier.
	ErrNotFound = errors.New("datadex: record not found")

	// ErrAlreadyExists is returned when adding a record with an identifier that is already present.
	ErrAlreadyExists = errors.New("datadex: record id already exists")

	// ErrNameTaken is returned when a (language, name) pair is already claimed by another record.
	ErrNameTaken = errors.New("datadex: name already claimed by another record")

	// ErrMissingName is returned when a record is inserted without a name field.
	ErrMissingName = errors.New("datadex: record is missing a name field")

	// ErrInvalidName is returned when a name field is not a mapping from language code to string.
	ErrInvalidName = errors.New("datadex: name field must map language codes to strings")

	// ErrNameRequired is returned when attempting to delete the name field from a record.
	ErrNameRequired = errors.New("datadex: name field cannot be removed")

	// ErrFieldNotFound is returned when a record field is absent.
	ErrFieldNotFound = errors.New("datadex: field not found")

	// ErrLanguageNotFound is returned when a record has no name in the requested language.
	ErrLanguageNotFound = errors.New("datadex: no name for language")
)
