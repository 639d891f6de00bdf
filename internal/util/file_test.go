package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name untouched",
			input:    "floor-plan.pdf",
			expected: "floor-plan.pdf",
		},
		{
			name:     "path traversal stripped",
			input:    "../../etc/passwd",
			expected: "passwd",
		},
		{
			name:     "windows separators stripped",
			input:    `..\..\plan.pdf`,
			expected: "plan.pdf",
		},
		{
			name:     "unsafe characters replaced",
			input:    "kitchen plan (v2).pdf",
			expected: "kitchen_plan_v2_.pdf",
		},
		{
			name:     "empty name falls back",
			input:    "",
			expected: "file",
		},
		{
			name:     "dot only falls back",
			input:    "...",
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestAddUniquePrefixToFileName(t *testing.T) {
	got, err := AddUniquePrefixToFileName("plan.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "_plan.pdf"))
	assert.NotEqual(t, "plan.pdf", got)

	// Back-to-back calls never collide, even within one timer tick.
	again, err := AddUniquePrefixToFileName("plan.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, got, again)
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", FileExtension("Plan.PDF"))
	assert.Equal(t, "xlsx", FileExtension("budget.xlsx"))
	assert.Equal(t, "", FileExtension("no-extension"))
}
