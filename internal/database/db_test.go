package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNWithPassword(t *testing.T) {
	cfg := Config{User: "museum", Pass: "s3cret", Host: "db", Port: "3306", Name: "museum_site"}
	assert.Equal(t,
		"museum:s3cret@tcp(db:3306)/museum_site?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.dsn())
}

func TestDSNWithoutPassword(t *testing.T) {
	cfg := Config{User: "root", Host: "127.0.0.1", Port: "3307", Name: "museum_site"}
	assert.Equal(t,
		"root@tcp(127.0.0.1:3307)/museum_site?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.dsn())
}
