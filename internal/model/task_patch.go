package model

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON attribute that remembers whether it appeared in the payload.
// A present null sets Null; an absent key leaves Set false.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler. It only runs for keys present in the input.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// Has reports whether the field was present with a non-null value.
func (f Field[T]) Has() bool {
	return f.Set && !f.Null
}

// TaskPatch is a partial task update. Absent fields leave the task untouched.
type TaskPatch struct {
	Title       Field[string]     `json:"title"`
	Description Field[string]     `json:"description"`
	Status      Field[TaskStatus] `json:"status"`
}

// Apply copies the present fields of p onto t. Empty titles and unknown statuses are
// skipped rather than rejected; a null description clears it.
func (p TaskPatch) Apply(t *Task) {
	if p.Title.Has() && p.Title.Value != "" {
		t.Title = p.Title.Value
	}
	if p.Description.Set {
		if p.Description.Null {
			t.Description = nil
		} else {
			desc := p.Description.Value
			t.Description = &desc
		}
	}
	if p.Status.Has() && p.Status.Value.Valid() {
		t.Status = p.Status.Value
	}
}
