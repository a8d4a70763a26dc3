// Package domain defines the core business entities for ResumeBuddy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Profile: The singleton career history (experience, projects, skills, education)
//   - JobDescription: A pasted job posting, immutable once stored
//   - OptimizedResume: A rewritten resume with its rubric score
//   - CoverLetter: A generated cover letter for a job description
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
