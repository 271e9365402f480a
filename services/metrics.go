package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	motorcyclesInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "immat_motorcycles_inserted_total",
		Help: "Registration records committed by bulk inserts",
	})

	motorcyclesUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "immat_motorcycles_updated_total",
		Help: "Registration records updated by frame number",
	})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "immat_login_attempts_total",
		Help: "Login attempts by outcome",
	}, []string{"outcome"})
)
