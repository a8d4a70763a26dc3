// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ProfileStore: Singleton profile persistence
//   - JobDescriptionStore: Job description persistence
//   - ResumeStore: Optimized resume persistence
//   - CoverLetterStore: Cover letter persistence
//   - ModelGateway: The single outbound call to the model provider
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ExtractorRegistry: Reads job descriptions from files. Without it,
//     job text must be passed inline.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
