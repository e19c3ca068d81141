package memory

import "github.com/certflow/certification-system/internal/core/domain"

// SeedAccounts returns the fixture accounts the mock ships with.
func SeedAccounts() []Account {
	return []Account{
		{Email: "employee@testing.com", Password: "testing99", Role: domain.RoleEmployee},
		{Email: "supervisor@testing.com", Password: "testing00!", Role: domain.RoleSupervisor},
	}
}

// SeedRequests returns the fixture certification requests (ids 1–5). The
// store's id counter continues from the highest id here.
func SeedRequests() []domain.CertificationRequest {
	return []domain.CertificationRequest{
		{ID: 1, Description: "New office chair", Budget: 300, ExpectedDate: "2025-08-15", Status: domain.StatusApproved, EmployeeName: "employee@testing.com"},
		{ID: 2, Description: "Google Cloud Professional Data Engineer", Budget: 600, ExpectedDate: "2025-08-01", Status: domain.StatusSubmitted, EmployeeName: "employee@testing.com"},
		{ID: 3, Description: "AWS Certified Solutions Architect - Associate", Budget: 1200, ExpectedDate: "2025-09-01", Status: domain.StatusDraft, EmployeeName: "employee@testing.com"},
		{ID: 4, Description: "Microsoft Certified: Azure AI Fundamentals", Budget: 850, ExpectedDate: "2025-07-25", Status: domain.StatusRejected, EmployeeName: "employee@testing.com"},
		{ID: 5, Description: "AWS Certified Cloud Practitioner", Budget: 700, ExpectedDate: "2025-08-20", Status: domain.StatusApproved, EmployeeName: "employee@testing.com"},
	}
}
