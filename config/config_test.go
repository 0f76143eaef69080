package config_test

import (
	"testing"

	"github.com/katalvlaran/seqrnn/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLRSchedule_ThreePhases(t *testing.T) {
	s, err := config.ParseLRSchedule("12:0.001:0.01,6:0.0001:0.01,3:0.00001:0")
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.Equal(t, config.Phase{Epochs: 12, LR: 0.001, WeightDecay: 0.01}, s[0])
	assert.Equal(t, config.Phase{Epochs: 3, LR: 0.00001, WeightDecay: 0}, s[2])
	assert.Equal(t, 21, s.TotalEpochs())
}

func TestParseLRSchedule_MalformedPhase(t *testing.T) {
	_, err := config.ParseLRSchedule("12:0.001")
	assert.ErrorIs(t, err, config.ErrMalformedSchedule)
}

func TestParseBatchSize_WithAndWithoutTestSize(t *testing.T) {
	train, test, err := config.ParseBatchSize("32")
	require.NoError(t, err)
	assert.Equal(t, 32, train)
	assert.Equal(t, 0, test)

	train, test, err = config.ParseBatchSize("32:8")
	require.NoError(t, err)
	assert.Equal(t, 32, train)
	assert.Equal(t, 8, test)
}

func TestParseHiddenSizes_SpaceSeparated(t *testing.T) {
	sizes, err := config.ParseHiddenSizes("128 64")
	require.NoError(t, err)
	assert.Equal(t, []int{128, 64}, sizes)
}

func TestParse_SinglePhaseFlags(t *testing.T) {
	cfg, err := config.Parse("test", []string{"-e", "5", "-r", "0.01", "-w", "0.001", "-b", "16:4", "-L", "64 32", "-S", "stateful", "-c", "cross-entropy"})
	require.NoError(t, err)
	require.Len(t, cfg.Schedule, 1)
	assert.Equal(t, config.Phase{Epochs: 5, LR: 0.01, WeightDecay: 0.001}, cfg.Schedule[0])
	assert.Equal(t, 16, cfg.TrainBatchSize)
	assert.Equal(t, 4, cfg.TestBatchSize)
	assert.Equal(t, []int{64, 32}, cfg.HiddenSizes)
	assert.Equal(t, config.Stateful, cfg.StateMode)
	assert.Equal(t, config.CrossEntropy, cfg.LossMode)
}

func TestParse_FullScheduleString(t *testing.T) {
	cfg, err := config.Parse("test", []string{"-r", "12:0.001:0.01,6:0.0001:0.01"})
	require.NoError(t, err)
	require.Len(t, cfg.Schedule, 2)
	assert.Equal(t, config.CTC, cfg.LossMode)
}

func TestParse_InvalidLossMode(t *testing.T) {
	_, err := config.Parse("test", []string{"-c", "bogus"})
	assert.ErrorIs(t, err, config.ErrInvalidLossMode)
}
