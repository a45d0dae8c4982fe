// Copyright © 2018 One Concern

// Package storage provides the interface to read and rewrite vault documents.
//
// Documents are addressed by keys: slash-separated paths relative to the vault
// root. The only backend is the local file system (see localfs), which is also
// used with in-memory file systems for testing.
package storage
