// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - ProfileStore: The singleton career profile
//   - JobDescriptionStore: Pasted job descriptions
//   - ResumeStore: Optimized resumes with their rubric breakdown
//   - CoverLetterStore: Generated cover letters
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// List-valued fields are stored as JSON text columns.
//
// # Errors
//
// Missing rows map to domain.ErrNotFound. Every other driver failure is
// wrapped with domain.ErrStorage.
//
// # Data Location
//
// By default, the database is stored at ~/.resumebuddy/data/resumebuddy.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
