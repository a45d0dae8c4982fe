// Copyright © 2018 One Concern

// Package status declares error constants returned by
// implementations of the Store interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/storage and one
// of its implementions.
package status

import "github.com/oneconcern/vaultmon/pkg/errors"

var (
	// Sentinel errors returned by implementations of the interface defined by storage

	// ErrNotFound indicates that the document does not exist on storage
	ErrNotFound = errors.New("not found")

	// ErrInvalidKey indicates that the key does not address a location inside the vault
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrIsDir indicates that a document operation was attempted on a directory
	ErrIsDir = errors.New("is a directory")

	// ErrStorage indicates any other error reported by the underlying file system
	ErrStorage = errors.New("storage error")
)
