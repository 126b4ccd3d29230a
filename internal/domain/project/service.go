package project

import "context"

type ProjectService interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	AssignMember(ctx context.Context, projectID string, req AssignMemberRequest) error
}
