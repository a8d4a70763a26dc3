// Package extractors provides implementations of the TextExtractor
// interface for the job description formats the CLI accepts. Each
// extractor knows how to pull readable text out of one family of MIME
// types.
//
// Extractors are registered with the Registry at startup.
package extractors
