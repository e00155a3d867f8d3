package create_booking

import (
	"context"

	claimSlots "github.com/nailsbynatalia/booking-service/internal/usecase/claim_slots"
)

type ClaimSlotsUseCase interface {
	Execute(ctx context.Context, req claimSlots.ClaimRequest) (*claimSlots.ClaimResult, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
