package apiserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presale_api_requests_total",
			Help: "Total number of json rpc requests by method and status",
		},
		[]string{"method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "presale_api_request_duration_seconds",
			Help:    "Duration of json rpc requests",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method"},
	)

	ChainHeight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "presale_chain_height",
			Help: "Last committed height of the chain",
		},
	)

	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presale_transactions_total",
			Help: "Total number of executed transactions by status",
		},
		[]string{"status"},
	)
)
