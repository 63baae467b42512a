package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		user     string
		pass     string
		expected string
	}{
		{
			name:     "native dsn untouched",
			in:       "u:p@tcp(db:3306)/app?parseTime=true",
			expected: "u:p@tcp(db:3306)/app?parseTime=true",
		},
		{
			name:     "jdbc url",
			in:       "jdbc:mysql://root:pw@127.0.0.1:3306/app?useSSL=false&serverTimezone=UTC&characterEncoding=utf8",
			expected: "root:pw@tcp(127.0.0.1:3306)/app?charset=utf8&loc=UTC&parseTime=true&tls=false",
		},
		{
			name:     "overrides win",
			in:       "mysql://a:b@h:1/db?user=c&password=d",
			user:     "u",
			pass:     "p",
			expected: "u:p@tcp(h:1)/db?charset=utf8mb4&parseTime=true",
		},
		{
			name:     "query credentials",
			in:       "mysql://h:1/db?user=c&password=d",
			expected: "c:d@tcp(h:1)/db?charset=utf8mb4&parseTime=true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMySQLDSN(tt.in, tt.user, tt.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(h)/db", maskDSN("root:secret@tcp(h)/db"))
	assert.Equal(t, "tcp(h)/db", maskDSN("tcp(h)/db"))
}

func TestNewGorm_SQLiteMemory(t *testing.T) {
	db, err := NewGorm(Opts{Driver: DriverSQLite, MaxOpenConns: 10, MaxIdleConns: 1, LogLevel: "silent"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Ping())
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	assert.True(t, errors.Is(err, ErrUnsupportedDriver))
}
