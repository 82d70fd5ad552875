package postgres

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolStatsCollector_Describe(t *testing.T) {
	c := NewPoolStatsCollector(nil)

	ch := make(chan *prometheus.Desc, 16)
	c.Describe(ch)
	close(ch)

	count := 0
	for range ch {
		count++
	}
	assert.Equal(t, 7, count)
}

func TestPoolStatsCollector_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewPoolStatsCollector(nil)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}
