package database

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

// OptionModel is a named setting, one row per option
type OptionModel struct {
	Name      string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OptionModel) TableName() string {
	return "options"
}

// OptionRepositoryAdapter implements the OptionRepository port using GORM
type OptionRepositoryAdapter struct {
	db *gorm.DB
}

// NewOptionRepositoryAdapter creates a new option repository adapter
func NewOptionRepositoryAdapter(db *gorm.DB) *OptionRepositoryAdapter {
	return &OptionRepositoryAdapter{db: db}
}

// Get returns the stored value of name, or a NotFound error
func (r *OptionRepositoryAdapter) Get(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.NewValidationError("option name cannot be empty")
	}

	var model OptionModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.NewNotFoundError("option not found")
		}
		return "", errors.NewDatabaseError("failed to read option", result.Error)
	}

	return model.Value, nil
}

// Set creates or overwrites the option
func (r *OptionRepositoryAdapter) Set(ctx context.Context, name, value string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("option name cannot be empty")
	}

	model := OptionModel{Name: name, Value: value}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save option", result.Error)
	}

	return nil
}

// Delete removes the option. Deleting an absent option is not an error.
func (r *OptionRepositoryAdapter) Delete(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("option name cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&OptionModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete option", result.Error)
	}

	return nil
}

var _ ports.OptionRepository = (*OptionRepositoryAdapter)(nil)
