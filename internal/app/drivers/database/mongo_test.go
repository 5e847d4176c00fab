package database

import (
	"testing"
	"wellness-wizard/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func TestMongoConnectionString(t *testing.T) {
	t.Run("Anonymous connection omits credentials", func(t *testing.T) {
		cfg := &config.DriverConfig{MongoDB: config.MongoDB{Host: "db", Port: "27017"}}
		assert.Equal(t, "mongodb://db:27017", mongoConnectionString(cfg))
	})

	t.Run("Credentials are embedded when a username is set", func(t *testing.T) {
		cfg := &config.DriverConfig{MongoDB: config.MongoDB{Host: "db", Port: "27017", Username: "u", Password: "p"}}
		assert.Equal(t, "mongodb://u:p@db:27017", mongoConnectionString(cfg))
	})
}
