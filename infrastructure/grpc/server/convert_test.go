package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
)

func TestZoneTypeFromProto(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		description string
		wire        int32
		want        domain.ZoneType
	}{
		{"Should map birth", 1, domain.ZoneBirth},
		{"Should map death", 2, domain.ZoneDeath},
		{"Should map coordination", 3, domain.ZoneCoordination},
		{"Should map common", 4, domain.ZoneCommon},
		{"Should map isolated", 5, domain.ZoneIsolated},
		{"Should map bus lane", 6, domain.ZoneLaneForBus},
		{"Should map transit", 7, domain.ZoneTransit},
		{"Should map crosswalk", 8, domain.ZoneCrosswalk},
		{"Should degrade zero to undefined", 0, domain.ZoneUndefined},
		{"Should degrade unknown tags to undefined", 99, domain.ZoneUndefined},
		{"Should degrade negative tags to undefined", -1, domain.ZoneUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req.Equal(tt.want, zoneTypeFromProto(tt.wire))
		})
	}
}

func TestTripTypeFromProto(t *testing.T) {
	req := require.New(t)

	req.Equal(domain.TripConstant, tripTypeFromProto(1))
	req.Equal(domain.TripRandom, tripTypeFromProto(2))
	req.Equal(domain.TripUndefined, tripTypeFromProto(0))
	req.Equal(domain.TripUndefined, tripTypeFromProto(42))
}

func TestAgentTypeRoundTrip(t *testing.T) {
	req := require.New(t)

	agents := []domain.AgentType{
		domain.AgentCar,
		domain.AgentBus,
		domain.AgentTaxi,
		domain.AgentPedestrian,
	}
	for _, a := range agents {
		req.Equal(a, agentTypeFromProto(agentTypeToProto(a)))
	}

	req.Equal(domain.AgentUndefined, agentTypeFromProto(0))
	req.Equal(domain.AgentUndefined, agentTypeFromProto(255))
	req.Equal(int32(0), agentTypeToProto(domain.AgentUndefined))
}

func TestBehaviourTypeFromProto(t *testing.T) {
	req := require.New(t)

	req.Equal(domain.BehaviourBlock, behaviourTypeFromProto(1))
	req.Equal(domain.BehaviourAggressive, behaviourTypeFromProto(2))
	req.Equal(domain.BehaviourCooperative, behaviourTypeFromProto(3))
	req.Equal(domain.BehaviourLimitSpeedByTrip, behaviourTypeFromProto(4))
	req.Equal(domain.BehaviourUndefined, behaviourTypeFromProto(0))
	req.Equal(domain.BehaviourUndefined, behaviourTypeFromProto(-5))
}

func TestWinnerTypeFromProto(t *testing.T) {
	req := require.New(t)

	req.Equal(domain.ConflictWinnerEqual, winnerTypeFromProto(1))
	req.Equal(domain.ConflictWinnerFirst, winnerTypeFromProto(2))
	req.Equal(domain.ConflictWinnerSecond, winnerTypeFromProto(3))
	req.Equal(domain.ConflictWinnerUndefined, winnerTypeFromProto(0))
	req.Equal(domain.ConflictWinnerUndefined, winnerTypeFromProto(7))
}

func TestGroupTypeFromProto(t *testing.T) {
	req := require.New(t)

	req.Equal(domain.GroupVehicle, groupTypeFromProto(1))
	req.Equal(domain.GroupPedestrian, groupTypeFromProto(2))
	req.Equal(domain.GroupUndefined, groupTypeFromProto(0))
	req.Equal(domain.GroupUndefined, groupTypeFromProto(3))
}
