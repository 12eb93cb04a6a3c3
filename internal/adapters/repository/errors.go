package repository

import "errors"

// Sentinel kinds for provider errors.
var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrLoadDataset    = errors.New("load dataset")
	ErrUnknownSource  = errors.New("unknown data source")
)
