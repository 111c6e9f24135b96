package overtime

import "context"

type OvertimeRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Update(ctx context.Context, req Request) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
}
