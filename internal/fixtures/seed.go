package fixtures

import (
	"github.com/raminfosys/erp-backend-go/internal/domain/announcement"
	"github.com/raminfosys/erp-backend-go/internal/domain/project"
	"github.com/raminfosys/erp-backend-go/internal/domain/task"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// BUILT-IN SEED SET
// ==========================================
//
// Each function returns a fresh value so callers may mutate the result.

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "password123"

// Users returns the seed accounts: one admin, one HR lead, one engineer.
func Users() []user.User {
	return []user.User{
		{
			ID:         "1",
			Name:       "Admin Director",
			Email:      "admin@raminfosys.com",
			Username:   "admin",
			Password:   DefaultPassword,
			Role:       user.RoleAdmin,
			Department: "Management",
			JoinedDate: "2023-01-01",
			IsApproved: true,
		},
		{
			ID:         "2",
			Name:       "Sarah HR",
			Email:      "hr@raminfosys.com",
			Username:   "hr_lead",
			Password:   DefaultPassword,
			Role:       user.RoleHR,
			Department: "Human Resources",
			JoinedDate: "2023-02-15",
			IsApproved: true,
		},
		{
			ID:               "3",
			Name:             "John Doe",
			Email:            "john@raminfosys.com",
			Username:         "john_dev",
			Password:         DefaultPassword,
			Role:             user.RoleEmployee,
			Department:       "Engineering",
			JoinedDate:       "2023-06-10",
			IsApproved:       true,
			CurrentProjectID: strPtr("p1"),
		},
	}
}

// Projects returns the seed projects.
func Projects() []project.Project {
	return []project.Project{
		{ID: "p1", Name: "Cloud Migration", Client: "Global Tech", Status: project.StatusActive, Team: []string{"3"}},
		{ID: "p2", Name: "ERP Security", Client: "Raminfosys Internal", Status: project.StatusActive, Team: []string{"3", "4"}},
	}
}

// Tasks returns the seed tasks.
func Tasks() []task.Task {
	return []task.Task{
		{
			ID:          "t1",
			Title:       "Database Indexing",
			Description: "Optimize SQL queries",
			AssignedTo:  "3",
			AssignedBy:  "2",
			ProjectID:   "p1",
			Status:      task.StatusInProgress,
			Deadline:    "2025-01-15",
		},
	}
}

// Announcements returns the single welcome entry.
func Announcements() []announcement.Announcement {
	return []announcement.Announcement{
		{
			ID:       "a1",
			Title:    "Welcome to the Raminfosys ERP",
			Content:  "Check in daily with the camera and GPS capture, track your tasks and submit leave requests here.",
			Author:   "Admin Director",
			Date:     "2024-01-01",
			Priority: announcement.PriorityNormal,
		},
	}
}
