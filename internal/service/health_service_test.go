package service_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/fuzumoe/gopaginate/internal/pagination"
	"github.com/fuzumoe/gopaginate/internal/service"
)

func TestHealthService_Check(t *testing.T) {
	t.Run("Nil database", func(t *testing.T) {
		stat := service.NewHealthService(nil, "svc").Check()
		assert.Equal(t, "svc", stat.Service)
		assert.Equal(t, "disconnected", stat.Database)
		assert.False(t, stat.Healthy)
		assert.Equal(t, pagination.Options().Size, stat.DefaultSize)
		assert.False(t, stat.Checked.IsZero())
	})

	t.Run("Ping failure", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()

		mock.ExpectPing() // gorm.Open pings once
		db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
		require.NoError(t, err)

		mock.ExpectPing().WillReturnError(assert.AnError)

		stat := service.NewHealthService(db, "svc").Check()
		assert.Equal(t, "unhealthy", stat.Database)
		assert.False(t, stat.Healthy)
	})

	t.Run("Healthy", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()

		mock.ExpectPing() // gorm.Open pings once
		db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
		require.NoError(t, err)

		mock.ExpectPing()

		stat := service.NewHealthService(db, "svc").Check()
		assert.Equal(t, "healthy", stat.Database)
		assert.True(t, stat.Healthy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
