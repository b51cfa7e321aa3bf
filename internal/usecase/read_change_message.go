package usecase

import (
	"context"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// ReadChangeMessageInput contains the parameters for reading the PR description.
type ReadChangeMessageInput struct{}

// ReadChangeMessageOutput contains the PR description, if any.
type ReadChangeMessageOutput struct {
	Message string // Empty when not running on a pull request
	IsPR    bool   // Whether CIRRUS_PR is set
}

// ReadChangeMessage is the use case for reading the pull request description.
type ReadChangeMessage struct {
	env domain.Environment
}

// NewReadChangeMessage creates a new ReadChangeMessage use case.
func NewReadChangeMessage(env domain.Environment) *ReadChangeMessage {
	return &ReadChangeMessage{env: env}
}

// Execute reads CIRRUS_CHANGE_MESSAGE.
// An unset or empty message is valid outside a pull request, but a
// configuration error when CIRRUS_PR is set.
func (uc *ReadChangeMessage) Execute(_ context.Context, _ ReadChangeMessageInput) (*ReadChangeMessageOutput, error) {
	_, isPR := uc.env.LookupEnv(domain.EnvPR)
	msg, _ := uc.env.LookupEnv(domain.EnvChangeMessage)

	if msg == "" && isPR {
		return nil, domain.NewError(domain.KindConfiguration, domain.ErrChangeMessageUnset)
	}
	return &ReadChangeMessageOutput{Message: msg, IsPR: isPR}, nil
}
