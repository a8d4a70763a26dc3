package domain

// RawDocument represents opaque bytes read from a job description file.
// It is the input to text extraction.
type RawDocument struct {
	// URI is the original location (file path).
	URI string

	// MIMEType is the content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
