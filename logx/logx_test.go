package logx_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqrnn/logx"
	"github.com/stretchr/testify/assert"
)

func TestInfo_PrefixesLevel(t *testing.T) {
	var buf strings.Builder
	l := logx.New(&buf)
	l.Info("epoch %d done", 3)
	assert.Contains(t, buf.String(), "INFO epoch 3 done")
}

func TestWarn_PrefixesLevel(t *testing.T) {
	var buf strings.Builder
	l := logx.New(&buf)
	l.Warn("skipping sequence %d", 7)
	assert.Contains(t, buf.String(), "WARN skipping sequence 7")
}
