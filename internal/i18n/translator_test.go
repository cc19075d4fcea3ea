package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator()

	testCases := []struct {
		name     string
		template string
		args     map[string]string
		expected string
	}{
		{
			name:     "No args",
			template: "Are you sure?",
			expected: "Are you sure?",
		},
		{
			name:     "Prefix collision",
			template: "%developer is not a member of the %team %team_label.",
			args: map[string]string{
				"%developer":  "alice",
				"%team":       "Backend",
				"%team_label": "team",
			},
			expected: "alice is not a member of the Backend team.",
		},
		{
			name:     "Missing arg stays unsubstituted",
			template: "%developer successfully removed from the %team_label.",
			args:     map[string]string{"%team_label": "team"},
			expected: "%developer successfully removed from the team.",
		},
		{
			name:     "Keys without prefix are ignored",
			template: "team_id stays",
			args:     map[string]string{"team_id": "t1"},
			expected: "team_id stays",
		},
		{
			name:     "Substituted values are not expanded again",
			template: "@a and @b",
			args:     map[string]string{"@a": "@b", "@b": "x"},
			expected: "@b and x",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tr.T(tc.template, tc.args))
		})
	}
}
