package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToDelete  = errors.New("failed to delete record")
	ErrFailedToMigrate = errors.New("failed to create schema")
)
