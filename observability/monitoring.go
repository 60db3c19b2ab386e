// Package observability aggregates gateway counters for the stats worker
// and the debug HTTP endpoint.
package observability

import (
	"sync/atomic"
	"time"
)

// MonitoringStats is a point-in-time snapshot of the gateway counters.
type MonitoringStats struct {
	SessionsCreated   uint64 `json:"sessions_created"`
	SessionsPurged    uint64 `json:"sessions_purged"`
	SessionsLive      int    `json:"sessions_live"`
	CellsPushed       uint64 `json:"cells_pushed"`
	TripsPushed       uint64 `json:"trips_pushed"`
	TrafficLightsPush uint64 `json:"traffic_lights_pushed"`
	ConflictZonesPush uint64 `json:"conflict_zones_pushed"`
	StepsExecuted     uint64 `json:"steps_executed"`
	CollectedAt       string `json:"collected_at"`
}

// MonitoringManager collects counters with atomics so handlers never
// contend on a lock for bookkeeping.
type MonitoringManager struct {
	sessionsCreated   atomic.Uint64
	sessionsPurged    atomic.Uint64
	cellsPushed       atomic.Uint64
	tripsPushed       atomic.Uint64
	trafficLightsPush atomic.Uint64
	conflictZonesPush atomic.Uint64
	stepsExecuted     atomic.Uint64
}

func NewMonitoringManager() *MonitoringManager {
	return &MonitoringManager{}
}

func (mm *MonitoringManager) IncrSessionsCreated() { mm.sessionsCreated.Add(1) }

func (mm *MonitoringManager) AddSessionsPurged(n uint64) { mm.sessionsPurged.Add(n) }

func (mm *MonitoringManager) AddCellsPushed(n uint64) { mm.cellsPushed.Add(n) }

func (mm *MonitoringManager) AddTripsPushed(n uint64) { mm.tripsPushed.Add(n) }

func (mm *MonitoringManager) AddTrafficLightsPushed(n uint64) { mm.trafficLightsPush.Add(n) }

func (mm *MonitoringManager) AddConflictZonesPushed(n uint64) { mm.conflictZonesPush.Add(n) }

func (mm *MonitoringManager) IncrStepsExecuted() { mm.stepsExecuted.Add(1) }

// Snapshot materializes the counters; sessionsLive comes from the caller
// since the registry owns that gauge.
func (mm *MonitoringManager) Snapshot(sessionsLive int) MonitoringStats {
	return MonitoringStats{
		SessionsCreated:   mm.sessionsCreated.Load(),
		SessionsPurged:    mm.sessionsPurged.Load(),
		SessionsLive:      sessionsLive,
		CellsPushed:       mm.cellsPushed.Load(),
		TripsPushed:       mm.tripsPushed.Load(),
		TrafficLightsPush: mm.trafficLightsPush.Load(),
		ConflictZonesPush: mm.conflictZonesPush.Load(),
		StepsExecuted:     mm.stepsExecuted.Load(),
		CollectedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}
