package models

import "errors"

var (
	// ErrDataUnavailable means an input table is missing or could not be read.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrDataMalformed means an input table lacks a required column or holds an unparseable value.
	ErrDataMalformed = errors.New("data malformed")

	// ErrEmptyInput means a computation received zero rows.
	ErrEmptyInput = errors.New("empty input")
)
