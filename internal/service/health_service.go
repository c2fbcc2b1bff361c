package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fuzumoe/gopaginate/internal/pagination"
)

const pingTimeout = 2 * time.Second

type HealthStatus struct {
	Service     string
	Database    string
	Healthy     bool
	DefaultSize int
	Checked     time.Time
}

type HealthService interface {
	Check() *HealthStatus
}

type healthService struct {
	name  string
	probe func() (string, bool)
}

func NewHealthService(db *gorm.DB, name string) HealthService {
	return &healthService{
		name: name,
		probe: func() (string, bool) {
			if db == nil {
				return "disconnected", false
			}
			sqlDB, err := db.DB()
			if err != nil {
				return "unhealthy", false
			}
			ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
			defer cancel()
			if err := sqlDB.PingContext(ctx); err != nil {
				return "unhealthy", false
			}
			return "healthy", true
		},
	}
}

func (h *healthService) Check() *HealthStatus {
	dbStatus, ok := h.probe()
	return &HealthStatus{
		Service:     h.name,
		Database:    dbStatus,
		Healthy:     ok,
		DefaultSize: pagination.Options().Size,
		Checked:     time.Now().UTC(),
	}
}
