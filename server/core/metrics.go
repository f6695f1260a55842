package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics with bounded cardinality (attack type is the only label)
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "impact_tick_duration_seconds",
		Help:    "Time spent in one engine frame",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	hitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impact_hits_total",
		Help: "Connecting hits by attack type",
	}, []string{"attack_type"}) // Bounded: "melee", "ranged", "environment"

	missesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "impact_swings_missed_total",
		Help: "Attacks that spent their cooldown without connecting",
	})

	deathsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "impact_deaths_total",
		Help: "Combatant deaths",
	})

	comboMultiplier = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "impact_combo_multiplier",
		Help: "Current chaos combo multiplier",
	})

	timeScale = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "impact_time_scale",
		Help: "Effective time scale of the last frame",
	})

	airborne = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "impact_airborne_combatants",
		Help: "Live combatants currently ragdolled",
	})
)
