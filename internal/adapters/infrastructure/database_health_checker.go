package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"weatherblock.app/internal/ports"
)

// DatabaseHealthChecker reports on the option store. The store is unhealthy
// when it cannot be pinged or when one of its tables has not been migrated.
type DatabaseHealthChecker struct {
	db     *gorm.DB
	driver string
	tables []string
}

func NewDatabaseHealthChecker(db *gorm.DB, driver string, tables ...string) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db, driver: driver, tables: tables}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Status:    ports.StatusUnhealthy,
		Details:   map[string]interface{}{"driver": d.driver},
	}

	if d.db == nil {
		status.Error = "option store is not connected"
		return status
	}

	sqlDB, err := d.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status.Error = err.Error()
		return status
	}

	migrator := d.db.WithContext(ctx).Migrator()
	for _, table := range d.tables {
		if !migrator.HasTable(table) {
			status.Error = "table " + table + " is missing"
			return status
		}
	}

	status.Status = ports.StatusHealthy
	status.Details["tables"] = len(d.tables)
	return status
}
