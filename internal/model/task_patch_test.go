package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTaskPatch_Apply(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Task
	}{
		{
			name:     "empty payload changes nothing",
			body:     `{}`,
			expected: Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusPending},
		},
		{
			name:     "valid status applied",
			body:     `{"status":"done"}`,
			expected: Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusDone},
		},
		{
			name:     "unknown status ignored",
			body:     `{"status":"bogus"}`,
			expected: Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusPending},
		},
		{
			name:     "null description clears it",
			body:     `{"description":null}`,
			expected: Task{Title: "buy milk", Status: TaskStatusPending},
		},
		{
			name:     "title and description replaced",
			body:     `{"title":"buy bread","description":"wholegrain","status":"in_progress"}`,
			expected: Task{Title: "buy bread", Description: strPtr("wholegrain"), Status: TaskStatusInProgress},
		},
		{
			name:     "empty title ignored",
			body:     `{"title":""}`,
			expected: Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusPending},
		},
		{
			name:     "null title ignored",
			body:     `{"title":null}`,
			expected: Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusPending},
		},
		{
			name:     "non-string status ignored",
			body:     `{"status":5,"title":"renamed"}`,
			expected: Task{Title: "renamed", Description: strPtr("2 litres"), Status: TaskStatusPending},
		},
		{
			name:     "object status ignored",
			body:     `{"status":{"v":"done"}}`,
			expected: Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusPending},
		},
		{
			name:     "unrelated keys ignored",
			body:     `{"user_id":99,"id":7}`,
			expected: Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusPending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch TaskPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))

			task := Task{Title: "buy milk", Description: strPtr("2 litres"), Status: TaskStatusPending}
			patch.Apply(&task)

			assert.Equal(t, tt.expected, task)
		})
	}
}

func TestTaskPatch_TitleTypeMismatch(t *testing.T) {
	var patch TaskPatch
	err := json.Unmarshal([]byte(`{"title":5}`), &patch)
	assert.Error(t, err)
}

func TestTaskStatus_UnmarshalJSON(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"status":true}`), &patch))
	assert.True(t, patch.Status.Has())
	assert.False(t, patch.Status.Value.Valid())

	var status TaskStatus
	require.NoError(t, json.Unmarshal([]byte(`"in_progress"`), &status))
	assert.Equal(t, TaskStatusInProgress, status)
}

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, TaskStatusPending.Valid())
	assert.True(t, TaskStatusInProgress.Valid())
	assert.True(t, TaskStatusDone.Valid())
	assert.False(t, TaskStatus("bogus").Valid())
	assert.False(t, TaskStatus("").Valid())
}
