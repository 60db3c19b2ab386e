// Command example drives a tiny crossroad scenario against a running
// gateway: one horizontal road crossed by two vertical ones, a conflict
// zone on the first intersection, a two-phase traffic light on the
// second, and three random vehicle generators.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	addr := os.Getenv("MT_SIM_ADDR")
	if addr == "" {
		addr = "127.0.0.1:50051"
	}

	if err := runScenario(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Scenario failed: %v\n", err)
		os.Exit(1)
	}
}

func runScenario(addr string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	cli := pb.NewServiceClient(conn)
	ctx := context.Background()

	header("CREATE SESSION")
	newResp, err := cli.NewSession(ctx, &pb.SessionReq{Srid: 0})
	if err != nil {
		return err
	}
	if newResp.Id == nil {
		return errors.New("server returned empty session id")
	}
	sid := newResp.Id.Value
	fmt.Printf("Session created: %s\n", sid)

	header("PUSH GRID")
	if err := pushGrid(ctx, cli, sid); err != nil {
		return err
	}

	header("PUSH CONFLICT ZONES")
	if err := pushConflictZones(ctx, cli, sid); err != nil {
		return err
	}

	header("PUSH TRAFFIC LIGHTS")
	if err := pushTrafficLights(ctx, cli, sid); err != nil {
		return err
	}

	header("PUSH TRIPS")
	if err := pushTrips(ctx, cli, sid); err != nil {
		return err
	}

	header("SIMULATION STEPS")
	return runSteps(ctx, cli, sid, 20)
}

func header(title string) {
	color.New(color.BgBlack, color.FgGreen).Printf("  ====== %s ======\n", title)
}

// crossroadCells builds a horizontal road (cells 0-9) crossed by two
// vertical roads (10-19 at x=3.5 and 20-29 at x=6.5). Every road starts
// with a birth cell and ends with a death cell.
func crossroadCells() []*pb.Cell {
	var cells []*pb.Cell
	road := func(base int64, vertical bool, fixed float64, extraLink func(i int64) (left, right int64)) {
		for i := int64(0); i < 10; i++ {
			zone := pb.ZoneType_ZONE_TYPE_COMMON
			if i == 0 {
				zone = pb.ZoneType_ZONE_TYPE_BIRTH
			} else if i == 9 {
				zone = pb.ZoneType_ZONE_TYPE_DEATH
			}
			forward := int64(-1)
			if i < 9 {
				forward = base + i + 1
			}
			left, right := extraLink(i)
			x, y := float64(i), fixed
			if vertical {
				x, y = fixed, float64(i)
			}
			cells = append(cells, &pb.Cell{
				Id:          base + i,
				Geom:        &pb.Point{X: x, Y: y},
				ZoneType:    zone,
				SpeedLimit:  1,
				LeftNode:    left,
				ForwardNode: forward,
				RightNode:   right,
			})
		}
	}
	// Horizontal road turns onto the vertical roads at the crossings.
	road(0, false, 3.5, func(i int64) (int64, int64) {
		switch i {
		case 3:
			return 14, -1
		case 6:
			return 24, -1
		}
		return -1, -1
	})
	road(10, true, 3.5, func(i int64) (int64, int64) {
		if i == 3 {
			return -1, 4
		}
		return -1, -1
	})
	road(20, true, 6.5, func(i int64) (int64, int64) {
		if i == 3 {
			return -1, 7
		}
		return -1, -1
	})
	return cells
}

func pushGrid(ctx context.Context, cli pb.ServiceClient, sid string) error {
	stream, err := cli.PushSessionGrid(ctx)
	if err != nil {
		return err
	}
	if err := stream.Send(&pb.SessionGrid{
		SessionId: &pb.UUIDv4{Value: sid},
		Data:      crossroadCells(),
	}); err != nil {
		return err
	}
	resp, err := stream.Recv()
	if err != nil {
		return err
	}
	fmt.Printf("Response: %s\n", resp.Text)
	return stream.CloseSend()
}

func pushConflictZones(ctx context.Context, cli pb.ServiceClient, sid string) error {
	stream, err := cli.PushSessionConflictZones(ctx)
	if err != nil {
		return err
	}
	// The first vertical road has priority over the horizontal one.
	if err := stream.Send(&pb.SessionConflictZones{
		SessionId: &pb.UUIDv4{Value: sid},
		Data: []*pb.ConflictZone{{
			Id:             1,
			SourceX:        3,
			TargetX:        4,
			SourceY:        13,
			TargetY:        14,
			ConflictWinner: pb.ConflictWinnerType_CONFLICT_WINNER_SECOND,
		}},
	}); err != nil {
		return err
	}
	resp, err := stream.Recv()
	if err != nil {
		return err
	}
	fmt.Printf("Response: %s\n", resp.Text)
	return stream.CloseSend()
}

func pushTrafficLights(ctx context.Context, cli pb.ServiceClient, sid string) error {
	stream, err := cli.PushSessionTLS(ctx)
	if err != nil {
		return err
	}
	if err := stream.Send(&pb.SessionTLS{
		SessionId: &pb.UUIDv4{Value: sid},
		Data: []*pb.TrafficLight{{
			Id:   1,
			Geom: &pb.Point{X: 7.0, Y: 4.0},
			Groups: []*pb.Group{
				{
					Id:      100,
					Label:   "Group block H",
					Cells:   []int64{6},
					Signals: []string{"g", "r"},
					Type:    pb.GroupType_GROUP_TYPE_VEHICLE,
				},
				{
					Id:      200,
					Label:   "Group block V2",
					Cells:   []int64{23},
					Signals: []string{"r", "g"},
					Type:    pb.GroupType_GROUP_TYPE_VEHICLE,
				},
			},
			Times: []int64{5, 5},
		}},
	}); err != nil {
		return err
	}
	resp, err := stream.Recv()
	if err != nil {
		return err
	}
	fmt.Printf("Response: %s\n", resp.Text)
	return stream.CloseSend()
}

func pushTrips(ctx context.Context, cli pb.ServiceClient, sid string) error {
	stream, err := cli.PushSessionTrip(ctx)
	if err != nil {
		return err
	}
	trips := []*pb.Trip{
		{Id: 1, TripType: pb.TripType_TRIP_TYPE_RANDOM, FromNode: 0, ToNode: 9, InitialSpeed: 1,
			Probability: 0.2, AgentType: pb.AgentType_AGENT_TYPE_CAR, BehaviourType: pb.BehaviourType_BEHAVIOUR_TYPE_COOPERATIVE},
		{Id: 2, TripType: pb.TripType_TRIP_TYPE_RANDOM, FromNode: 10, ToNode: 19, InitialSpeed: 1,
			Probability: 0.3, AgentType: pb.AgentType_AGENT_TYPE_CAR, BehaviourType: pb.BehaviourType_BEHAVIOUR_TYPE_COOPERATIVE},
		{Id: 3, TripType: pb.TripType_TRIP_TYPE_RANDOM, FromNode: 20, ToNode: 29, InitialSpeed: 1,
			Probability: 0.1, AgentType: pb.AgentType_AGENT_TYPE_CAR, BehaviourType: pb.BehaviourType_BEHAVIOUR_TYPE_COOPERATIVE},
	}
	if err := stream.Send(&pb.SessionTrip{SessionId: &pb.UUIDv4{Value: sid}, Data: trips}); err != nil {
		return err
	}
	resp, err := stream.Recv()
	if err != nil {
		return err
	}
	fmt.Printf("Response: %s\n", resp.Text)
	return stream.CloseSend()
}

func runSteps(ctx context.Context, cli pb.ServiceClient, sid string, n int) error {
	stream, err := cli.SimulationStepSession(ctx)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := stream.Send(&pb.SessionStep{SessionId: &pb.UUIDv4{Value: sid}}); err != nil {
			return err
		}
		resp, err := stream.Recv()
		if err != nil {
			return err
		}
		printDump(resp)
	}
	return stream.CloseSend()
}

func printDump(resp *pb.SessionStepResponse) {
	fmt.Printf("Tick %d: %d vehicle(s)\n", resp.Timestamp, len(resp.VehicleData))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Vehicle", "Type", "Cell", "Speed", "Bearing", "Trip", "Travel time"})
	for _, v := range resp.VehicleData {
		table.Append([]string{
			strconv.FormatInt(v.VehicleId, 10),
			v.VehicleType.String(),
			strconv.FormatInt(v.Cell, 10),
			strconv.FormatInt(v.Speed, 10),
			fmt.Sprintf("%.1f", v.Bearing),
			strconv.FormatInt(v.TripId, 10),
			fmt.Sprintf("%.0f", v.TravelTime),
		})
	}
	table.Render()

	for _, tl := range resp.TlsData {
		for _, g := range tl.Groups {
			fmt.Printf("  traffic light %d group %d: %s\n", tl.Id, g.Id, g.Signal)
		}
	}
}
