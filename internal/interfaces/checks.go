package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/openshelf/openshelf/internal/database"
	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/http"
	"github.com/openshelf/openshelf/internal/metadata"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// LookupStore implementations
var _ http.LookupStore = (*books.Repository)(nil)

// BookManagerStore implementations
var _ http.BookManagerStore = (*books.Repository)(nil)

// =============================================================================
// External Services
// =============================================================================

// MetadataProvider implementations
var _ http.MetadataProvider = (*metadata.OpenLibraryClient)(nil)

// =============================================================================
// Health Checks
// =============================================================================

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)
