package browser

import (
	"errors"
	"testing"
)

func TestIsLoginURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"login path", "https://sora.com/login", true},
		{"auth subdomain", "https://auth.openai.com/authorize", true},
		{"uppercase", "https://sora.com/LOGIN?next=/", true},
		{"home page", "https://sora.com/", false},
		{"library page", "https://sora.com/library", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLoginURL(tt.url); got != tt.want {
				t.Errorf("isLoginURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestErrNoSelectorMatched(t *testing.T) {
	wrapped := errors.New("wrapped")
	if errors.Is(wrapped, ErrNoSelectorMatched) {
		t.Error("Unrelated error should not match ErrNoSelectorMatched")
	}

	session := &Session{}
	if session.Has([]string{"#anything"}) {
		t.Error("Has should report false with no open page")
	}
	if session.CurrentURL() != "" {
		t.Error("CurrentURL should be empty with no open page")
	}
	if session.IsLoggedIn() {
		t.Error("IsLoggedIn should report false with no open page")
	}
}
