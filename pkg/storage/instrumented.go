// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Instrument a store: every operation is logged at debug level, with its duration and outcome
func Instrument(logger *zap.Logger, store Store) Store {
	return &instrumentedStore{
		store:  store,
		logger: logger.With(zap.String("store", store.String())),
	}
}

type instrumentedStore struct {
	store  Store
	logger *zap.Logger
}

func (i *instrumentedStore) opName(name string) string {
	return strings.Join([]string{"storage", name}, ".")
}

func (i *instrumentedStore) done(op, key string, t0 time.Time, err error) {
	if ce := i.logger.Check(zap.DebugLevel, i.opName(op)); ce != nil {
		ce.Write(zap.String("key", key), zap.Duration("duration", time.Since(t0)), zap.Error(err))
	}
}

func (i *instrumentedStore) Stat(ctx context.Context, key string) (e Entry, err error) {
	defer func(t0 time.Time) { i.done("stat", key, t0, err) }(time.Now())
	return i.store.Stat(ctx, key)
}

func (i *instrumentedStore) Get(ctx context.Context, key string) (r io.ReadCloser, err error) {
	defer func(t0 time.Time) { i.done("get", key, t0, err) }(time.Now())
	return i.store.Get(ctx, key)
}

func (i *instrumentedStore) Put(ctx context.Context, key string, rdr io.Reader) (err error) {
	defer func(t0 time.Time) { i.done("put", key, t0, err) }(time.Now())
	return i.store.Put(ctx, key, rdr)
}

func (i *instrumentedStore) ReadDir(ctx context.Context, key string) (entries []Entry, err error) {
	defer func(t0 time.Time) { i.done("readdir", key, t0, err) }(time.Now())
	return i.store.ReadDir(ctx, key)
}

func (i *instrumentedStore) String() string {
	return i.store.String()
}
