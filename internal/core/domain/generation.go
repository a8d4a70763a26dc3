package domain

// ResponseMIMEJSON asks the provider for a JSON response body.
const ResponseMIMEJSON = "application/json"

// GenerationConfig holds sampling parameters for one model call.
type GenerationConfig struct {
	Temperature      float64
	TopP             float64
	MaxOutputTokens  int
	ResponseMIMEType string
}

// OptimizeGenerationConfig returns the sampling parameters for resume optimization.
func OptimizeGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:      0.4,
		TopP:             0.95,
		MaxOutputTokens:  65536,
		ResponseMIMEType: ResponseMIMEJSON,
	}
}

// CoverLetterGenerationConfig returns the sampling parameters for cover letters.
func CoverLetterGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:      0.6,
		TopP:             0.95,
		MaxOutputTokens:  16384,
		ResponseMIMEType: ResponseMIMEJSON,
	}
}

// GenerateRequest is a single call to the model gateway.
type GenerateRequest struct {
	APIKey       string
	SystemPrompt string
	UserPrompt   string
	Config       GenerationConfig
}

// Operation names a pipeline operation for in-flight tracking.
type Operation string

// Pipeline operations.
const (
	OperationOptimize    Operation = "optimize"
	OperationCoverLetter Operation = "cover_letter"
)

// OptimizeRequest holds the inputs of a resume optimization.
type OptimizeRequest struct {
	APIKey     string
	JobTitle   string
	JobCompany string
	JobText    string
}

// OptimizeOutcome is the parsed model result plus the keys it was stored under.
type OptimizeOutcome struct {
	Result           OptimizeResult
	JobDescriptionID int64
	ResumeID         int64
}

// CoverLetterRequest holds the inputs of a cover letter generation.
// A positive SavedJobDescriptionID takes precedence over JobText.
type CoverLetterRequest struct {
	APIKey                string
	JobText               string
	SavedJobDescriptionID int64
}

// CoverLetterOutcome is the parsed model result plus the keys it was stored under.
type CoverLetterOutcome struct {
	Result           CoverLetterResult
	JobDescriptionID int64
	CoverLetterID    int64
}
