package reports

import (
	"testing"
	"time"

	"lawfirm-backend/internal/models"
)

func TestBuildCaseRegister(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := []models.Case{
		{
			CaseNumber: "C-100",
			Title:      "Smith v. Jones",
			ClientName: "Smith",
			Status:     models.CaseStatusOpen,
			Priority:   models.PriorityMedium,
			StartDate:  &start,
			Manager: &models.User{
				FirstName: "Admin",
				LastName:  "User",
			},
		},
		{
			CaseNumber: "C-101",
			Title:      "Estate of Brown",
			ClientName: "Brown",
			Status:     models.CaseStatusClosed,
			Priority:   models.PriorityHigh,
		},
	}

	f, err := BuildCaseRegister(cases)
	if err != nil {
		t.Fatalf("BuildCaseRegister: %v", err)
	}

	if got, _ := f.GetCellValue("Cases", "A1"); got != "Case Number" {
		t.Fatalf("expected header in A1, got %q", got)
	}
	if got, _ := f.GetCellValue("Cases", "A2"); got != "C-100" {
		t.Fatalf("expected C-100 in A2, got %q", got)
	}
	if got, _ := f.GetCellValue("Cases", "F2"); got != "Admin User" {
		t.Fatalf("expected manager name in F2, got %q", got)
	}
	if got, _ := f.GetCellValue("Cases", "G2"); got != "2025-03-01" {
		t.Fatalf("expected start date in G2, got %q", got)
	}
	if got, _ := f.GetCellValue("Cases", "D3"); got != "CLOSED" {
		t.Fatalf("expected CLOSED in D3, got %q", got)
	}
	if got, _ := f.GetCellValue("Cases", "F3"); got != "" {
		t.Fatalf("expected empty manager for unmanaged case, got %q", got)
	}
}
