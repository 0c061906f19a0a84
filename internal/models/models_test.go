package models

import "testing"

func TestIsValidCaseStatus(t *testing.T) {
	for _, s := range []string{"OPEN", "IN_PROGRESS", "UNDER_REVIEW", "PENDING_CLIENT", "SETTLED", "CLOSED", "ARCHIVED"} {
		if !IsValidCaseStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "open", "DELETED", "ON_HOLD"} {
		if IsValidCaseStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestIsValidTaskStatus(t *testing.T) {
	for _, s := range []string{"TO_DO", "IN_PROGRESS", "DONE", "BLOCKED"} {
		if !IsValidTaskStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if IsValidTaskStatus("CANCELLED") {
		t.Errorf("expected CANCELLED to be invalid")
	}
}

func TestIsValidPriority(t *testing.T) {
	for _, p := range []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"} {
		if !IsValidPriority(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}
	if IsValidPriority("URGENT") {
		t.Errorf("expected URGENT to be invalid")
	}
}

func TestIsValidUserRole(t *testing.T) {
	if !IsValidUserRole("ADMIN") || !IsValidUserRole("EMPLOYEE") {
		t.Fatalf("expected ADMIN and EMPLOYEE to be valid")
	}
	if IsValidUserRole("SUPER_ADMIN") || IsValidUserRole("admin") {
		t.Fatalf("expected unknown roles to be invalid")
	}
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "John", LastName: "Doe"}
	if got := u.FullName(); got != "John Doe" {
		t.Fatalf("expected 'John Doe', got %q", got)
	}
}
