package employee

import (
	"context"
	"fmt"
	"time"

	"go-employee-api/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	DocumentNumber string
	DateOfBirth    time.Time `gorm:"type:date"`
	Role           int
	ManagerID      *uuid.UUID    `gorm:"type:uuid"`
	Phones         []phoneRecord `gorm:"foreignKey:EmployeeID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (employeeRecord) TableName() string { return "employees" }

type phoneRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	Number     string
	Position   int
}

func (phoneRecord) TableName() string { return "employee_phones" }

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDocumentNumber(ctx context.Context, document string) (bool, error)
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	ListAll(ctx context.Context) ([]*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func orderedPhones(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var rec employeeRecord
	err := r.db.WithContext(ctx).
		Preload("Phones", orderedPhones).
		Where("id = ?", id).
		Take(&rec).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rec.toDomain()
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	var rec employeeRecord
	err := r.db.WithContext(ctx).
		Preload("Phones", orderedPhones).
		Where("email = ?", email).
		Take(&rec).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rec.toDomain()
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *repository) ExistsByDocumentNumber(ctx context.Context, document string) (bool, error) {
	return r.exists(ctx, "document_number = ?", document)
}

func (r *repository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employeeRecord{}).
		Where(query, arg).
		Count(&count).Error
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return count > 0, nil
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	rec := toRecord(e)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Phones").Create(&rec).Error; err != nil {
			return err
		}
		if len(rec.Phones) == 0 {
			return nil
		}
		return tx.Create(&rec.Phones).Error
	})
	return mapRepositoryError(err)
}

// Update rewrites the mutable columns and replaces the phone list.
func (r *repository) Update(ctx context.Context, e *Employee) error {
	rec := toRecord(e)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&employeeRecord{}).
			Where("id = ?", rec.ID).
			Updates(map[string]any{
				"first_name":    rec.FirstName,
				"last_name":     rec.LastName,
				"password_hash": rec.PasswordHash,
				"updated_at":    rec.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("employee_id = ?", rec.ID).Delete(&phoneRecord{}).Error; err != nil {
			return err
		}
		if len(rec.Phones) == 0 {
			return nil
		}
		return tx.Create(&rec.Phones).Error
	})
	return mapRepositoryError(err)
}

func (r *repository) ListAll(ctx context.Context) ([]*Employee, error) {
	var recs []employeeRecord
	err := r.db.WithContext(ctx).
		Preload("Phones", orderedPhones).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	out := make([]*Employee, len(recs))
	for i := range recs {
		e, err := recs[i].toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func toRecord(e *Employee) employeeRecord {
	phones := make([]phoneRecord, len(e.Phones))
	for i, p := range e.Phones {
		phones[i] = phoneRecord{
			ID:         p.ID,
			EmployeeID: e.ID,
			Number:     p.Number,
			Position:   i,
		}
	}
	return employeeRecord{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email.Address,
		PasswordHash:   e.Password,
		DocumentNumber: e.Document.Number,
		DateOfBirth:    e.DateOfBirth,
		Role:           int(e.Role),
		ManagerID:      e.ManagerID,
		Phones:         phones,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// toDomain rejects a stored role outside the known set.
func (rec employeeRecord) toDomain() (*Employee, error) {
	role, err := domain.ParseRole(rec.Role)
	if err != nil {
		return nil, fmt.Errorf("employee %s: %w", rec.ID, err)
	}

	phones := make([]Phone, len(rec.Phones))
	for i, p := range rec.Phones {
		phones[i] = Phone{ID: p.ID, Number: p.Number}
	}
	return New(NewEmployeeParams{
		ID:          rec.ID,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Email:       NewEmail(rec.Email),
		Password:    rec.PasswordHash,
		Document:    NewDocument(rec.DocumentNumber),
		Phones:      phones,
		DateOfBirth: rec.DateOfBirth,
		Role:        role,
		ManagerID:   rec.ManagerID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}), nil
}
