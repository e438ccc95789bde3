package contracts

import "context"

// SessionTokenProvider is the external session collaborator. It only supplies
// the bearer credential; acquisition and refresh live outside this service.
type SessionTokenProvider interface {
	BearerToken(ctx context.Context) (string, error)
}
