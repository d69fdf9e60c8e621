package models

import "testing"

func TestIsValidAdRequestTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{AdRequestStatusPending, AdRequestStatusAccepted, true},
		{AdRequestStatusPending, AdRequestStatusRejected, true},

		// Terminal states are one-way
		{AdRequestStatusAccepted, AdRequestStatusRejected, false},
		{AdRequestStatusAccepted, AdRequestStatusPending, false},
		{AdRequestStatusRejected, AdRequestStatusAccepted, false},
		{AdRequestStatusRejected, AdRequestStatusPending, false},

		// Re-invoking a response on a terminal record must not succeed
		{AdRequestStatusAccepted, AdRequestStatusAccepted, false},
		{AdRequestStatusRejected, AdRequestStatusRejected, false},

		// Self-loop and unknown statuses
		{AdRequestStatusPending, AdRequestStatusPending, false},
		{"nonexistent", AdRequestStatusAccepted, false},
		{AdRequestStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidAdRequestTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidAdRequestTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		AdRequestStatusPending, AdRequestStatusAccepted, AdRequestStatusRejected,
	}

	for _, status := range allStatuses {
		if _, ok := ValidAdRequestTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidAdRequestTransitions map", status)
		}
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{AdRequestStatusAccepted, AdRequestStatusRejected}
	for _, status := range terminal {
		transitions := ValidAdRequestTransitions[status]
		if len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}

func TestResponderRole(t *testing.T) {
	tests := []struct {
		createdBy string
		expected  string
	}{
		{CreatedBySponsor, RoleInfluencer},
		{CreatedByInfluencer, RoleSponsor},
		{"admin", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run("created_by="+tt.createdBy, func(t *testing.T) {
			if got := ResponderRole(tt.createdBy); got != tt.expected {
				t.Errorf("ResponderRole(%q) = %q, want %q", tt.createdBy, got, tt.expected)
			}
		})
	}
}
