package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/raminfosys/erp-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(projectRepository project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{ProjectRepository: projectRepository}
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.Project, error) {
	return s.ProjectRepository.List(ctx)
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	newProject := project.Project{
		ID:     req.ID,
		Name:   req.Name,
		Client: req.Client,
		Status: req.Status,
		Team:   project.DedupeTeam(req.Team),
	}
	if newProject.ID == "" {
		newProject.ID = uuid.Must(uuid.NewV7()).String()
	}
	if newProject.Status == "" {
		newProject.Status = project.StatusActive
	}

	created, err := s.ProjectRepository.Create(ctx, newProject)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("Project created", "project_id", created.ID, "name", created.Name)
	return created, nil
}

// AssignMember implements project.ProjectService.
func (s *ProjectServiceImpl) AssignMember(ctx context.Context, projectID string, req project.AssignMemberRequest) error {
	if err := s.ProjectRepository.AssignMember(ctx, req.UserID, projectID); err != nil {
		return fmt.Errorf("failed to assign project member: %w", err)
	}
	slog.Info("Project member assigned", "project_id", projectID, "user_id", req.UserID)
	return nil
}
