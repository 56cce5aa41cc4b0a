package mailer

import (
	"errors"
	"testing"
)

func TestSendWithRetryRecovers(t *testing.T) {
	m := NewSendgrid("", "noreply@interiorhub.dev", false, nil)

	attempts := 0
	code, err := m.sendWithRetry(func() (int, error) {
		attempts++
		if attempts < 2 {
			return -1, errors.New("temporarily unavailable")
		}
		return 202, nil
	})
	if err != nil {
		t.Fatalf("Expected retry to recover, got error: %v", err)
	}
	if code != 202 {
		t.Errorf("Expected status code 202, got %d", code)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestSendWithRetryReportsLastError(t *testing.T) {
	m := NewSendgrid("", "noreply@interiorhub.dev", false, nil)

	sendErr := errors.New("connection refused")
	attempts := 0
	_, err := m.sendWithRetry(func() (int, error) {
		attempts++
		return -1, sendErr
	})
	if attempts != MAX_RETRY {
		t.Errorf("Expected %d attempts, got %d", MAX_RETRY, attempts)
	}
	if err == nil {
		t.Fatal("Expected an error after exhausting retries")
	}
	if !errors.Is(err, sendErr) {
		t.Errorf("Expected the last attempt error to be reported, got: %v", err)
	}
}
