package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ORIGINS", " http://a.example , ,http://b.example")
	t.Setenv("ORDER_ID_ATTEMPTS", "10")
	t.Setenv("PORT", "8081")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.Origins)
	assert.Equal(t, 10, cfg.Booking.OrderIDAttempts)
	assert.Equal(t, ":8081", cfg.Server.Addr())
	assert.Equal(t, "travel_db", cfg.Database.Name)
}

func TestTrimOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, trimOrigins(nil))
	assert.Equal(t, []string{"*"}, trimOrigins([]string{" ", ""}))
	assert.Equal(t, []string{"http://x"}, trimOrigins([]string{" http://x "}))
}

func TestResolveDSN(t *testing.T) {
	dsn, name, err := DatabaseConfig{URL: "mysql://app:pw@db.internal:3307/travel?tls=true"}.ResolveDSN()
	require.NoError(t, err)
	assert.Equal(t, "travel", name)
	assert.Contains(t, dsn, "app:pw@tcp(db.internal:3307)/travel?")
	assert.Contains(t, dsn, "parseTime=True")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.Contains(t, dsn, "tls=true")

	dsn, _, err = DatabaseConfig{FallbackURL: "mysql://app:pw@db/travel"}.ResolveDSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "@tcp(db:3306)/travel?")

	_, _, err = DatabaseConfig{URL: "mysql://app:pw@db/"}.ResolveDSN()
	assert.Error(t, err)

	dsn, name, err = DatabaseConfig{User: "root", Password: "pw", Host: "127.0.0.1", Port: "3306", Name: "travel_db"}.ResolveDSN()
	require.NoError(t, err)
	assert.Equal(t, "travel_db", name)
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/travel_db?charset=utf8mb4&parseTime=True&loc=UTC", dsn)
}
