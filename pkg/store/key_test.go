package store

import (
	"strings"
	"testing"

	"github.com/shuldan/appconfig/pkg/errors"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		name            string
		key             string
		expectedSection string
		expectedName    string
		expectErr       bool
	}{
		{
			name:            "well formed key",
			key:             "AppSettings:Foo",
			expectedSection: "AppSettings",
			expectedName:    "Foo",
		},
		{
			name:      "no delimiter",
			key:       "BadKey",
			expectErr: true,
		},
		{
			name:      "too many delimiters",
			key:       "A:B:C",
			expectErr: true,
		},
		{
			name:      "empty section",
			key:       ":Foo",
			expectErr: true,
		},
		{
			name:      "empty name",
			key:       "AppSettings:",
			expectErr: true,
		},
		{
			name:      "empty key",
			key:       "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, name, err := SplitKey(tt.key)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, ErrMalformedKey) {
					t.Errorf("expected ErrMalformedKey, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.key) && tt.key != "" {
					t.Errorf("expected malformed key in message, got %q", err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if section != tt.expectedSection || name != tt.expectedName {
				t.Errorf("expected %s/%s, got %s/%s", tt.expectedSection, tt.expectedName, section, name)
			}
		})
	}
}

func TestJoinKey(t *testing.T) {
	if JoinKey("AppSettings", "Foo") != "AppSettings:Foo" {
		t.Errorf("unexpected join result: %s", JoinKey("AppSettings", "Foo"))
	}
}
