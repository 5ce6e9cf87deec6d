package partitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(4)
	assert.Equal(t, int32(4), cfg.NParts)
	assert.Equal(t, float32(1.05), cfg.ImbalanceFactor)
	assert.Equal(t, ObjectiveCut, cfg.Objective)
}

func TestConfigParse(t *testing.T) {
	data := []byte(`
NParts: 8
ImbalanceFactor: 1.1
Objective: vol
`)
	var cfg Config
	require.NoError(t, cfg.Parse(data))
	assert.Equal(t, int32(8), cfg.NParts)
	assert.Equal(t, float32(1.1), cfg.ImbalanceFactor)
	assert.Equal(t, ObjectiveVol, cfg.Objective)
}

func TestConfigParseDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Parse([]byte("NParts: 2\n")))
	assert.Equal(t, ObjectiveCut, cfg.Objective)
	assert.Equal(t, float32(1.05), cfg.ImbalanceFactor)
}

func TestConfigParseRejectsUnknownObjective(t *testing.T) {
	var cfg Config
	assert.Error(t, cfg.Parse([]byte("Objective: bisect\n")))
}
