package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "estate",
	Name:      "notifications_emitted_total",
	Help:      "Audit notifications appended, by entity type.",
}, []string{"type"})
