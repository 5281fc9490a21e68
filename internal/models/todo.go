// ABOUTME: TodoItem is one row of the Todos table
// ABOUTME: Tags describe the context a task can be done in
package models

import (
	"fmt"
	"strings"
)

// TodoStatusPending is the status every new task starts with
const TodoStatusPending = "Pending"

// Tag is the context label of a task
type Tag string

const (
	TagMobile Tag = "Mobile/Nursing"
	TagLaptop Tag = "Laptop/Focus"
)

// Tags lists every tag in display order
var Tags = []Tag{TagMobile, TagLaptop}

// ParseTag matches a tag case-insensitively; "mobile" and "laptop" are accepted as shorthands
func ParseTag(s string) (Tag, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tags {
		full := strings.ToLower(string(t))
		if v == full || v == strings.SplitN(full, "/", 2)[0] {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tag %q (want %q or %q)", s, TagMobile, TagLaptop)
}

// TodoItem is one row of the Todos table
type TodoItem struct {
	Task   string `json:"task" yaml:"task"`
	Tag    Tag    `json:"tag" yaml:"tag"`
	Status string `json:"status" yaml:"status"`
}
