package contract

import (
	"context"
	"log"
)

// Notifier is the outbound user-notification port. Implementations must not
// block submission; failures to notify are logged, not surfaced.
type Notifier interface {
	ContractCreated(ctx context.Context, contractNumber string)
	SubmitFailed(ctx context.Context, message string)
}

// LogNotifier is the in-process default; a storefront push channel can be
// swapped in without touching the usecase.
type LogNotifier struct{}

func (LogNotifier) ContractCreated(_ context.Context, contractNumber string) {
	log.Printf("contract %s created", contractNumber)
}

func (LogNotifier) SubmitFailed(_ context.Context, message string) {
	log.Printf("contract submission failed: %s", message)
}
