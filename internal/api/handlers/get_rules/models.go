package get_rules

import (
	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// RuleResponse HTTP response model for one weekly rule.
type RuleResponse struct {
	ID             string  `json:"id"`
	DayOfWeek      int     `json:"dayOfWeek"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	SlotDuration   int     `json:"slotDuration"`
	EffectiveFrom  *string `json:"effectiveFrom,omitempty"`
	EffectiveUntil *string `json:"effectiveUntil,omitempty"`
}

// RulesResponse HTTP response model
type RulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// FromRules converts domain rules into the HTTP response.
func FromRules(rules []*domain.AvailabilityRule) *RulesResponse {
	out := make([]RuleResponse, 0, len(rules))
	for _, rl := range rules {
		resp := RuleResponse{
			ID:           rl.ID.String(),
			DayOfWeek:    rl.DayOfWeek,
			StartTime:    rl.StartTime.String(),
			EndTime:      rl.EndTime.String(),
			SlotDuration: rl.SlotDuration,
		}
		if rl.EffectiveFrom != nil {
			s := rl.EffectiveFrom.String()
			resp.EffectiveFrom = &s
		}
		if rl.EffectiveUntil != nil {
			s := rl.EffectiveUntil.String()
			resp.EffectiveUntil = &s
		}
		out = append(out, resp)
	}
	return &RulesResponse{Rules: out}
}
