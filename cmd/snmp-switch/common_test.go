package main

import "testing"

func TestHostErrorMessage(t *testing.T) {
	err := &hostError{host: "nonexistent.invalid"}
	if got := err.Error(); got != "Unknown host: nonexistent.invalid" {
		t.Errorf("Error() = %q, want %q", got, "Unknown host: nonexistent.invalid")
	}
}
