package staff

import "time"

// Employee is a team member attached to a business owner.
type Employee struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"-"`
	TelegramID *int64    `json:"telegram_id,omitempty"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task is a unit of work optionally assigned to an employee.
type Task struct {
	ID           int64      `json:"id"`
	OwnerID      int64      `json:"-"`
	EmployeeID   *int64     `json:"employee_id,omitempty"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
