// Package staff stores employees and their tasks.
package staff

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pg *pgxpool.Pool
}

func NewStore(pg *pgxpool.Pool) *Store {
	return &Store{pg: pg}
}

func (s *Store) ListEmployees(ctx context.Context, ownerID int64) ([]Employee, error) {
	rows, err := s.pg.Query(ctx,
		`SELECT id, owner_id, telegram_id, name, role, is_active, created_at
		 FROM business_employees WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.TelegramID, &e.Name, &e.Role, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) CreateEmployee(ctx context.Context, e *Employee) (int64, error) {
	var id int64
	err := s.pg.QueryRow(ctx,
		`INSERT INTO business_employees (owner_id, telegram_id, name, role)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		e.OwnerID, e.TelegramID, e.Name, e.Role).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e *Employee) error {
	_, err := s.pg.Exec(ctx,
		`UPDATE business_employees
		 SET name=$3, role=$4, is_active=$5, updated_at=NOW()
		 WHERE id=$1 AND owner_id=$2`,
		e.ID, e.OwnerID, e.Name, e.Role, e.IsActive)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, ownerID, id int64) error {
	_, err := s.pg.Exec(ctx,
		`DELETE FROM business_employees WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// ListTasks returns tasks newest-first, optionally filtered by status.
func (s *Store) ListTasks(ctx context.Context, ownerID int64, status string) ([]Task, error) {
	query := `SELECT t.id, t.owner_id, t.employee_id, e.name, t.title, t.description, t.due_date, t.status, t.completed_at, t.created_at
	          FROM business_tasks t
	          LEFT JOIN business_employees e ON t.employee_id = e.id
	          WHERE t.owner_id=$1`
	args := []any{ownerID}
	if status != "" {
		query += ` AND t.status=$2`
		args = append(args, status)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.EmployeeID, &t.EmployeeName, &t.Title,
			&t.Description, &t.DueDate, &t.Status, &t.CompletedAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) CreateTask(ctx context.Context, t *Task) (int64, error) {
	if t.Status == "" {
		t.Status = StatusPending
	}
	var id int64
	err := s.pg.QueryRow(ctx,
		`INSERT INTO business_tasks (owner_id, employee_id, title, description, due_date, status)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		t.OwnerID, t.EmployeeID, t.Title, t.Description, t.DueDate, t.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	return id, nil
}

// UpdateTask rewrites a task; completed_at is stamped when the status moves
// to completed and cleared otherwise.
func (s *Store) UpdateTask(ctx context.Context, t *Task) error {
	_, err := s.pg.Exec(ctx,
		`UPDATE business_tasks
		 SET title=$3, description=$4, due_date=$5, status=$6, employee_id=$7,
		     completed_at = CASE WHEN $6 = 'completed' THEN NOW() ELSE NULL END
		 WHERE id=$1 AND owner_id=$2`,
		t.ID, t.OwnerID, t.Title, t.Description, t.DueDate, t.Status, t.EmployeeID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}
