package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"campusbot/internal/models"
	"campusbot/internal/repository"
	"campusbot/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Knowledge: config.KnowledgeConfig{Path: filepath.Join("..", "..", "data", "knowledge.json")},
		Students: config.StudentsConfig{
			Source: config.StudentSourceFile,
			Path:   filepath.Join("..", "..", "data", "students.json"),
		},
		Recognition: config.RecognitionConfig{Latency: 0, Timeout: time.Second, Seed: 1},
	}
}

func TestNewContainer_SampleData(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, c.Index.Available())
	assert.NotEmpty(t, c.KnowledgeBase.FeeStructure)

	resp := c.ChatService.Respond(context.Background(), "Tell me about fee structure", nil)
	assert.Equal(t, models.ResponseTypeFees, resp.Type)

	resp = c.ChatService.Respond(context.Background(), "hello", nil)
	assert.Equal(t, models.ResponseTypeGreeting, resp.Type)
	assert.Contains(t, c.KnowledgeBase.Greetings, resp.Text)

	resp = c.ChatService.Respond(context.Background(), "", []byte("photo"))
	assert.Equal(t, models.ResponseTypeStudentRecord, resp.Type)
}

func TestNewContainer_SampleQAPairsMatchThemselves(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)

	for _, qa := range c.KnowledgeBase.QAPairs {
		answer, score, ok := c.Index.Query(qa.Question)
		require.True(t, ok)
		assert.GreaterOrEqual(t, score, 0.99, qa.Question)
		assert.Equal(t, qa.Answer, answer, qa.Question)
	}
}

func TestNewContainer_MissingKnowledgeBase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Knowledge.Path = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewContainer(context.Background(), cfg, zap.NewNop())

	assert.ErrorIs(t, err, repository.ErrKnowledgeBaseNotFound)
}

func TestNewContainer_EmptyKnowledgeBaseStillAnswers(t *testing.T) {
	cfg := testConfig(t)
	cfg.Knowledge.Path = filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(cfg.Knowledge.Path, []byte(`{}`), 0o644))

	c, err := NewContainer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, c.Index.Available())
	resp := c.ChatService.Respond(context.Background(), "what is the weather", nil)
	assert.Equal(t, models.ResponseTypeGeneral, resp.Type)
}
