package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pingpong/internal/model"
)

var (
	ErrNameRequired = errors.New("name is required")
)

// TimestampLayout is the wall-clock format surfaced by /hello and /health,
// always rendered in UTC with a literal " UTC" suffix appended.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t as "YYYY-MM-DD HH:MM:SS UTC".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout) + " UTC"
}

// GreetingService defines the use case behind POST /hello.
type GreetingService interface {
	// Greet builds the personalized message for name from the current wall
	// clock. Returns ErrNameRequired when name is empty or all whitespace.
	Greet(ctx context.Context, name string) (*model.Greeting, error)
}

// greetingService is a concrete implementation of GreetingService.
type greetingService struct {
	now func() time.Time
}

// NewGreetingService constructs a GreetingService backed by the system clock.
func NewGreetingService() GreetingService {
	return &greetingService{now: time.Now}
}

func (s *greetingService) Greet(_ context.Context, name string) (*model.Greeting, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	return &model.Greeting{
		Message: fmt.Sprintf("Hello %s, current time is %s", name, FormatTimestamp(s.now())),
	}, nil
}
