package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound        = "found"
	outcomeNotFound     = "not_found"
	outcomeInvalidCount = "invalid_count"
)

var queriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tainan_restaurant_queries_total",
		Help: "Total number of restaurant queries by operation and outcome",
	},
	[]string{"operation", "outcome"},
)
