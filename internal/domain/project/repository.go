package project

import "context"

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, newProject Project) (Project, error)

	// AssignMember moves userID onto projectID's team, drops it from every
	// other team and points the user's currentProjectId at projectID, all in
	// one save.
	AssignMember(ctx context.Context, userID, projectID string) error
}
