package gen

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genai"
)

// fastSleep replaces the real backoff sleep, recording requested delays.
func fastSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var delays []time.Duration
	orig := retrySleep
	retrySleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	t.Cleanup(func() { retrySleep = orig })
	return &delays
}

func TestWithRetryTransientThenSuccess(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		wantCalls int
		wantErr   bool
	}{
		{"first attempt succeeds", 0, 1, false},
		{"one transient failure", 1, 2, false},
		{"four transient failures", 4, 5, false},
		{"five transient failures exhaust retries", 5, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fastSleep(t)
			calls := 0
			result, err := withRetry(context.Background(), "test", func(ctx context.Context) (string, error) {
				calls++
				if calls <= tc.failures {
					return "", genai.APIError{Code: 503, Message: "overloaded"}
				}
				return "ok", nil
			})

			if calls != tc.wantCalls {
				t.Errorf("op called %d times, want %d", calls, tc.wantCalls)
			}
			if tc.wantErr {
				var genErr *GenerationError
				if !errors.As(err, &genErr) {
					t.Fatalf("withRetry() error = %v, want *GenerationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("withRetry() error = %v", err)
			}
			if result != "ok" {
				t.Errorf("withRetry() = %q, want %q", result, "ok")
			}
		})
	}
}

func TestWithRetryNonTransientFailsImmediately(t *testing.T) {
	fastSleep(t)
	calls := 0
	_, err := withRetry(context.Background(), "test", func(ctx context.Context) (string, error) {
		calls++
		return "", genai.APIError{Code: 400, Message: "bad request"}
	})

	if calls != 1 {
		t.Errorf("op called %d times, want 1", calls)
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("withRetry() error = %v, want *GenerationError", err)
	}
	if genErr.Transient {
		t.Error("non-transient failure classified as transient")
	}
}

func TestWithRetryDoublesDelay(t *testing.T) {
	delays := fastSleep(t)
	_, _ = withRetry(context.Background(), "test", func(ctx context.Context) (string, error) {
		return "", genai.APIError{Code: 429, Message: "rate limited"}
	})

	want := []time.Duration{
		baseRetryDelay,
		2 * baseRetryDelay,
		4 * baseRetryDelay,
		8 * baseRetryDelay,
	}
	if len(*delays) != len(want) {
		t.Fatalf("slept %d times, want %d", len(*delays), len(want))
	}
	for i, d := range want {
		if (*delays)[i] != d {
			t.Errorf("delay %d = %s, want %s", i, (*delays)[i], d)
		}
	}
}

func TestWithRetryCancelledDuringBackoff(t *testing.T) {
	orig := retrySleep
	retrySleep = func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}
	t.Cleanup(func() { retrySleep = orig })

	calls := 0
	_, err := withRetry(context.Background(), "test", func(ctx context.Context) (string, error) {
		calls++
		return "", genai.APIError{Code: 503}
	})

	if calls != 1 {
		t.Errorf("op called %d times after cancellation, want 1", calls)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("withRetry() error = %v, want wrapped context.Canceled", err)
	}
}

func TestClassifyTransientCodes(t *testing.T) {
	tests := []struct {
		code      int
		transient bool
	}{
		{429, true},
		{500, true},
		{503, true},
		{400, false},
		{404, false},
	}
	for _, tc := range tests {
		genErr := classify("test", genai.APIError{Code: tc.code})
		if genErr.Transient != tc.transient {
			t.Errorf("classify(code %d).Transient = %v, want %v", tc.code, genErr.Transient, tc.transient)
		}
	}

	genErr := classify("test", errors.New("network down"))
	if genErr.Transient {
		t.Error("plain error classified as transient")
	}
}
