package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserRequest_Apply_EmptyProjectClears(t *testing.T) {
	projectID := "p1"
	u := User{ID: "3", Name: "John Doe", CurrentProjectID: &projectID}

	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"currentProjectId":""}`), &req))

	got := req.Apply(u)

	assert.Nil(t, got.CurrentProjectID)
	assert.Equal(t, "John Doe", got.Name)
}

func TestUpdateUserRequest_Apply_NullKeepsProject(t *testing.T) {
	projectID := "p1"
	u := User{ID: "3", CurrentProjectID: &projectID}

	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"currentProjectId":null,"department":"Platform"}`), &req))

	got := req.Apply(u)

	require.NotNil(t, got.CurrentProjectID)
	assert.Equal(t, "p1", *got.CurrentProjectID)
	assert.Equal(t, "Platform", got.Department)
}

func TestUpdateUserRequest_Apply_SetsProject(t *testing.T) {
	next := "p2"

	got := UpdateUserRequest{CurrentProjectID: &next}.Apply(User{ID: "3"})

	require.NotNil(t, got.CurrentProjectID)
	assert.Equal(t, "p2", *got.CurrentProjectID)
	next = "changed"
	assert.Equal(t, "p2", *got.CurrentProjectID)
}
