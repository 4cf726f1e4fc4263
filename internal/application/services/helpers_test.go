package services

import "github.com/prometheus/client_golang/prometheus"

// testCounter returns an unregistered counter vec so tests never collide on
// the default registry.
func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"},
	)
}
