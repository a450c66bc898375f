package service

import "time"

var (
	FallbackEstimate  = fallbackEstimate
	SimulatedEstimate = simulatedEstimate
)

func (s *MealService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *AuthService) SetClock(now func() time.Time) {
	s.now = now
}
