package domain

import (
	"time"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in_progress"
	TaskOnHold     TaskStatus = "on_hold"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityNormal TaskPriority = "normal"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// PriorityRank orders priorities for sorting: urgent sorts first.
func PriorityRank(p TaskPriority) int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type TaskCategory string

const (
	TaskHousekeeping TaskCategory = "housekeeping"
	TaskMaintenance  TaskCategory = "maintenance"
	TaskGuestRequest TaskCategory = "guest_request"
	TaskInternal     TaskCategory = "internal"
	TaskInspection   TaskCategory = "inspection"
	TaskDelivery     TaskCategory = "delivery"
	TaskOther        TaskCategory = "other"
)

// taskTransitions lists the allowed status changes for a task.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:    {TaskAssigned, TaskInProgress, TaskCancelled},
	TaskAssigned:   {TaskInProgress, TaskOnHold, TaskCancelled},
	TaskInProgress: {TaskOnHold, TaskCompleted, TaskCancelled},
	TaskOnHold:     {TaskInProgress, TaskCancelled},
	TaskCompleted:  {},
	TaskCancelled:  {},
}

// CanTransitionTask reports whether a task may move from one status to another.
func CanTransitionTask(from, to TaskStatus) bool {
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Task struct {
	ID               string       `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID         string       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	TaskNumber       string       `gorm:"type:text;not null" json:"task_number"`
	Title            string       `gorm:"type:text;not null" json:"title"`
	Description      string       `gorm:"type:text" json:"description,omitempty"`
	Category         TaskCategory `gorm:"type:text;not null" json:"category"`
	Priority         TaskPriority `gorm:"type:text;not null;default:'normal'" json:"priority"`
	Status           TaskStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	AssignedTo       string       `gorm:"type:uuid" json:"assigned_to,omitempty"`
	Department       string       `gorm:"type:text" json:"department,omitempty"`
	DueDate          string       `gorm:"type:date;not null" json:"due_date"`
	DueTime          string       `gorm:"type:text" json:"due_time,omitempty"`
	EstimatedMinutes int          `json:"estimated_minutes,omitempty"`
	RoomID           string       `gorm:"type:text" json:"room_id,omitempty"`
	GuestID          string       `gorm:"type:text" json:"guest_id,omitempty"`
	ReservationID    string       `gorm:"type:text" json:"reservation_id,omitempty"`
	StartedAt        *time.Time   `gorm:"type:timestamp with time zone" json:"started_at,omitempty"`
	CompletedAt      *time.Time   `gorm:"type:timestamp with time zone" json:"completed_at,omitempty"`
	CompletedBy      string       `gorm:"type:uuid" json:"completed_by,omitempty"`
	CreatedAt        time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t Task) GetID() string       { return t.ID }
func (t Task) GetTenantID() string { return t.TenantID }

type TaskFilter struct {
	Statuses   []TaskStatus `json:"statuses"`
	Priority   TaskPriority `json:"priority"`
	Category   TaskCategory `json:"category"`
	AssignedTo string       `json:"assigned_to"`
	Department string       `json:"department"`
	DueDate    string       `json:"due_date"`
	Search     string       `json:"search"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
}

type TaskStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Overdue    int64 `json:"overdue"`
	DueToday   int64 `json:"due_today"`
	Urgent     int64 `json:"urgent"`
}
