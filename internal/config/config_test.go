package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Username: "flowhub",
		Password: "p@ss/word",
		Name:     "flowhub_db",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "flowhub_db")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word", "special characters must be URL-encoded")
}

func TestConfig_Validate(t *testing.T) {
	valid := &Config{Database: DatabaseConfig{
		Host:     "localhost",
		Username: "postgres",
		Password: "secret",
		Name:     "flowhub_db",
	}}
	assert.NoError(t, valid.Validate())

	missingPassword := &Config{Database: DatabaseConfig{
		Host:     "localhost",
		Username: "postgres",
		Name:     "flowhub_db",
	}}
	assert.Error(t, missingPassword.Validate())
}

func TestParseCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseCommaSeparated("a, b"))
	assert.Equal(t, []string{"a"}, parseCommaSeparated("a,,"))
	assert.Empty(t, parseCommaSeparated(""))
}
