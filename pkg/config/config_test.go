package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "data/knowledge.json", cfg.Knowledge.Path)
	assert.Equal(t, StudentSourceFile, cfg.Students.Source)
	assert.Equal(t, time.Second, cfg.Recognition.Latency)
	assert.Equal(t, 5*time.Second, cfg.Recognition.Timeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Empty(t, cfg.Server.StaticDir)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("KNOWLEDGE_BASE_PATH", "/etc/campusbot/knowledge.yaml")
	t.Setenv("STUDENT_SOURCE", "postgres")
	t.Setenv("RECOGNITION_LATENCY_MS", "250")
	t.Setenv("RECOGNITION_TIMEOUT_MS", "1500")
	t.Setenv("RANDOM_SEED", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "/etc/campusbot/knowledge.yaml", cfg.Knowledge.Path)
	assert.Equal(t, StudentSourcePostgres, cfg.Students.Source)
	assert.Equal(t, 250*time.Millisecond, cfg.Recognition.Latency)
	assert.Equal(t, 1500*time.Millisecond, cfg.Recognition.Timeout)
	assert.Equal(t, int64(7), cfg.Recognition.Seed)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_MalformedNumberFallsBackToDefault(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_RejectsTimeoutNotAboveLatency(t *testing.T) {
	t.Setenv("RECOGNITION_LATENCY_MS", "2000")
	t.Setenv("RECOGNITION_TIMEOUT_MS", "2000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownStudentSource(t *testing.T) {
	t.Setenv("STUDENT_SOURCE", "ldap")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_RequiresKnowledgePath(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Knowledge.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestLoad_RejectsMinConnsAboveMax(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "3")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PoolAndStaticSettings(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "1")
	t.Setenv("DB_CONNECT_TIMEOUT_SEC", "2")
	t.Setenv("WEB_STATIC_DIR", "web/static")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, int32(1), cfg.Database.MinConns)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "web/static", cfg.Server.StaticDir)
}
