package repository_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"

	"github.com/fuzumoe/gopaginate/internal/repository"
)

func TestNewDB(t *testing.T) {
	t.Run("Malformed DSN", func(t *testing.T) {
		malformedDSN := "user@password:host:port/dbname?"
		_, err := repository.NewDB(malformedDSN, repository.DefaultDBOptions)
		assert.Error(t, err, "expected an error with malformed DSN")
	})

	t.Run("Connection Refused", func(t *testing.T) {
		refusedDSN := "root:password@tcp(localhost:65535)/nonexistent?parseTime=true"
		_, err := repository.NewDB(refusedDSN, repository.DefaultDBOptions)
		assert.Error(t, err, "expected connection refused error")
		assert.Contains(t, strings.ToLower(err.Error()), "connect", "error should indicate connection issue")
	})
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, repository.GormLogLevel("debug"))
	assert.Equal(t, logger.Error, repository.GormLogLevel("error"))
	assert.Equal(t, logger.Silent, repository.GormLogLevel("disabled"))
	assert.Equal(t, logger.Warn, repository.GormLogLevel("info"))
	assert.Equal(t, logger.Warn, repository.GormLogLevel(""))
}
