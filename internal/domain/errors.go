package domain

import "errors"

var (
	// ErrInvalidPreference is returned when a query's budget is non-positive
	// or every category filter is empty. Distinct from an empty result set,
	// which is a normal outcome.
	ErrInvalidPreference = errors.New("invalid preference parameters")

	// ErrNoDataset is returned when the source table cannot be read.
	ErrNoDataset = errors.New("dataset not found")

	// ErrMissingColumn is returned when a required source column is absent.
	ErrMissingColumn = errors.New("required column missing from dataset")

	// ErrStorageFailure is returned when the record store cannot be reached.
	ErrStorageFailure = errors.New("record storage failed")
)
