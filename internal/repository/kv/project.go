package kv

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/project"
)

type projectRepositoryImpl struct {
	store *Store
}

func NewProjectRepository(store *Store) project.ProjectRepository {
	return &projectRepositoryImpl{store: store}
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	return r.store.Sync(ctx).Projects, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	err := r.store.Update(ctx, func(c *Collections) error {
		c.Projects = append(c.Projects, newProject)
		return nil
	})
	if err != nil {
		return project.Project{}, err
	}
	return newProject, nil
}

// AssignMember implements project.ProjectRepository.
func (r *projectRepositoryImpl) AssignMember(ctx context.Context, userID, projectID string) error {
	return r.store.Update(ctx, func(c *Collections) error {
		for i := range c.Users {
			if c.Users[i].ID == userID {
				target := projectID
				c.Users[i].CurrentProjectID = &target
			}
		}

		for i := range c.Projects {
			if c.Projects[i].ID == projectID {
				c.Projects[i] = c.Projects[i].WithMember(userID)
			} else {
				c.Projects[i] = c.Projects[i].WithoutMember(userID)
			}
		}
		return nil
	})
}
