package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tainan_restaurant_dataset_records",
			Help: "Number of restaurant records loaded at startup",
		},
	)

	datasetDistricts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tainan_restaurant_dataset_districts",
			Help: "Number of distinct districts in the loaded dataset",
		},
	)
)
