package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publicYaml = `
pg:
  host: "localhost"
  port: 5432
  user: "memoboard"
  dbname: "memoboard"
port: 8080
jwt_ttl_minutes: 60
jwt_algorithm: "HS256"
log_level: "debug"
log_json: true
`

func writeConfigFolder(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(yaml), 0644))
	return dir
}

func TestMustLoad(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "testJwtKey")
	t.Setenv("PG_PASSWORD", "testPgPassword")

	cfg := MustLoad(writeConfigFolder(t, publicYaml))

	assert.Equal(t, "localhost", cfg.Public.Pg.Host)
	assert.Equal(t, 5432, cfg.Public.Pg.Port)
	assert.Equal(t, "memoboard", cfg.Public.Pg.User)
	assert.Equal(t, 8080, cfg.Public.Port)
	assert.Equal(t, "HS256", cfg.Public.JwtAlgorithm)
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.True(t, cfg.Public.LogJSON)
	assert.Equal(t, time.Hour, cfg.JwtTTL())
	assert.Equal(t, "testJwtKey", cfg.JwtKey())
	assert.Equal(t, "testPgPassword", cfg.PgPassword())
}

func TestMustLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	assert.Panics(t, func() { MustLoad(writeConfigFolder(t, publicYaml)) })
}

func TestMustLoadMissingFolder(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "testJwtKey")

	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}

func TestMustLoadBrokenYaml(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "testJwtKey")

	assert.Panics(t, func() { MustLoad(writeConfigFolder(t, "port: [broken")) })
}
