package schedule

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Read side
	SheetNames(ctx context.Context) []string
	GetEvents(ctx context.Context, input GetEventsInput) (GetEventsOutput, error)

	// Write side
	AddAll(ctx context.Context, input AddAllInput) (AddAllOutput, error)
	RemoveAll(ctx context.Context, input RemoveAllInput) (RemoveAllOutput, error)
}
