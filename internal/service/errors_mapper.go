// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-film-keeper/internal/adapter"
	"github.com/MKhiriev/go-film-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, adapter.ErrInvalidMovieID):
		return fmt.Errorf("%w: %w", ErrMovieNotFound, err)
	case errors.Is(err, adapter.ErrTooManyRequests), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrCatalogRateLimited, err)
	default:
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
}

// mapStoreError translates repository errors into service errors.
func mapStoreError(err error) error {
	if errors.Is(err, store.ErrFilmNotFound) {
		return fmt.Errorf("%w: %w", ErrMovieNotFound, err)
	}
	return err
}
