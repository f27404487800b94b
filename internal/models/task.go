package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TaskCategory string

const (
	TaskExam        TaskCategory = "exam"
	TaskDocument    TaskCategory = "document"
	TaskApplication TaskCategory = "application"
	TaskResearch    TaskCategory = "research"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case TaskExam, TaskDocument, TaskApplication, TaskResearch:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a checklist item. Only Completed ever changes after creation.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    TaskCategory `json:"category"`
	Completed   bool         `json:"completed"`
	Priority    Priority     `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
}

// Validate reports the first missing or out-of-range field of t.
func (t Task) Validate() error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return errors.New("id is required")
	case strings.TrimSpace(t.Title) == "":
		return errors.New("title is required")
	case !t.Category.Valid():
		return fmt.Errorf("unknown category %q", t.Category)
	case !t.Priority.Valid():
		return fmt.Errorf("unknown priority %q", t.Priority)
	}
	return nil
}
