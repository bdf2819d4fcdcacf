// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitvault/authd/internal/auth"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"alphanumeric", "alice42", true},
		{"underscore", "alice_b", true},
		{"minimum length", "abc", true},
		{"maximum length", strings.Repeat("a", 30), true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 31), false},
		{"empty", "", false},
		{"space", "alice b", false},
		{"hyphen", "alice-b", false},
		{"unicode", "ålice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidateUsername(tt.username)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"minimum length", "abcd", true},
		{"maximum length", strings.Repeat("a", 64), true},
		{"too short", "abc", false},
		{"too long", strings.Repeat("a", 65), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidatePassword(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
