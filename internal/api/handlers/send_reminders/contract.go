package send_reminders

import (
	"context"

	scanReminders "github.com/nailsbynatalia/booking-service/internal/usecase/scan_reminders"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

type ScanRemindersUseCase interface {
	Execute(ctx context.Context, targetDate types.DateString) (*scanReminders.ScanResult, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
