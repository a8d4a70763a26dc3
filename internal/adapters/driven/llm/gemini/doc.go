// Package gemini provides the model gateway adapter for the Gemini
// generateContent API.
package gemini
