package postgres

import (
	"context"
	"testing"

	"career-guide/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN_DefaultsSSLMode(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{DBHost: " db ", DBPort: "5432", DBUser: "app", DBPassword: "pw", DBName: "career"})
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=career sslmode=disable", dsn)

	dsn = DSN(config.DatabaseConfig{DBHost: "db", DBPort: "5432", DBUser: "app", DBName: "career", DBSSLMode: "require"})
	assert.Contains(t, dsn, "sslmode=require")
}

func TestPool_NilSafe(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.ErrorIs(t, p.Ping(ctx), errNilDB)
	assert.NoError(t, p.Close())
	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, errNilDB)
	_, err = p.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, errNilDB)
	var n int
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(&n), errNilDB)
	_, err = p.Begin(ctx)
	assert.ErrorIs(t, err, errNilDB)
}
