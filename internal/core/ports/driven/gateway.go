package driven

import (
	"context"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// ModelGateway sends one prompt pair to the model provider and decodes
// the JSON reply into out.
//
// Errors:
//   - *domain.AuthenticationError when the key is rejected
//   - *domain.ProviderError for any other non-success response
//   - domain.ErrEmptyResponse when the reply carries no text
//   - *domain.MalformedResponseError when the text is not valid JSON
type ModelGateway interface {
	Generate(ctx context.Context, req domain.GenerateRequest, out any) error
}
