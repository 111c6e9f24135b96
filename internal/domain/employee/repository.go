package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	ListByBranch(ctx context.Context, branchID string) ([]Employee, error)
}
