// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Server(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fisherman_test",
		Name:      "requests_total",
		Help:      "test counter",
	})
	require.NoError(t, registry.Register(counter))
	counter.Add(3)

	server := NewServer("127.0.0.1:0", registry)
	assert.Empty(t, server.Address())

	err := server.Start()
	require.NoError(t, err)

	response, err := http.Get("http://" + server.Address() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, response.Body.Close())

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, string(body), "fisherman_test_requests_total 3")

	err = server.Stop()
	assert.NoError(t, err)
}
