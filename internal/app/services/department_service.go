package services

import (
	"context"
	"strings"

	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/repositories"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// DepartmentService defines the interface for department operations
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	Update(ctx context.Context, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Department, error)
}

type departmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentService{departmentRepo: departmentRepo}
}

// Create creates a department with a unique name.
func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Department name is required")
	}

	exists, err := s.departmentRepo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Update renames a department, keeping names unique.
func (s *departmentService) Update(ctx context.Context, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Department name is required")
	}

	department := &models.Department{ID: req.ID, Name: name}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Delete removes a department. The repository refuses when courses or
// students still reference it.
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}

// GetAll lists all departments ordered by name.
func (s *departmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}
