package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGreetingService_Greet(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 8, 6, 10, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		clock   func() time.Time
		wantMsg string
		wantErr error
	}{
		{
			name:    "happy path",
			input:   "World",
			clock:   fixedClock(at),
			wantMsg: "Hello World, current time is 2025-08-06 10:30:45 UTC",
		},
		{
			name:    "name with spaces",
			input:   "Ada Lovelace",
			clock:   fixedClock(at),
			wantMsg: "Hello Ada Lovelace, current time is 2025-08-06 10:30:45 UTC",
		},
		{
			name:    "clock in non-UTC zone is normalized",
			input:   "World",
			clock:   fixedClock(at.In(time.FixedZone("CEST", 2*60*60))),
			wantMsg: "Hello World, current time is 2025-08-06 10:30:45 UTC",
		},
		{
			name:    "empty name",
			input:   "",
			clock:   fixedClock(at),
			wantErr: ErrNameRequired,
		},
		{
			name:    "whitespace name",
			input:   "   ",
			clock:   fixedClock(at),
			wantErr: ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &greetingService{now: tt.clock}

			got, err := svc.Greet(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2025, 12, 31, 23, 59, 59, 0, time.FixedZone("EST", -5*60*60))

	// 23:59:59 EST is 04:59:59 UTC the next day.
	assert.Equal(t, "2026-01-01 04:59:59 UTC", FormatTimestamp(at))
}
