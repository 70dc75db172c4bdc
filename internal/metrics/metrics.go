package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outlook_cycles_total",
		Help: "Completed outlook evaluation cycles by horizon and outcome.",
	}, []string{"horizon", "outcome"})

	SynthesizerSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outlook_synthesizer_seconds",
		Help:    "Time spent waiting on the thesis synthesizer.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 45, 90},
	}, []string{"horizon"})
)
