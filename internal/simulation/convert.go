package simulation

import (
	"github.com/its-ben-jammin/go-flocking/pb"
	"github.com/its-ben-jammin/go-flocking/pkg/flock"
	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

// ParamsToProto packs steering parameters into their wire form.
func ParamsToProto(p flock.Params) *pb.Params {
	return &pb.Params{
		CohesionRadius:    p.CohesionRadius,
		CohesionStrength:  p.CohesionStrength,
		AvoidanceRadius:   p.AvoidanceRadius,
		AvoidanceStrength: p.AvoidanceStrength,
		AlignmentRadius:   p.AlignmentRadius,
		AlignmentStrength: p.AlignmentStrength,
		MaxSpeed:          p.MaxSpeed,
		MaxForce:          p.MaxForce,
		BoundaryMargin:    p.BoundaryMargin,
		BoundaryStrength:  p.BoundaryStrength,
		FishSize:          p.FishSize,
		BoundaryAvoidance: p.BoundaryAvoidance,
	}
}

// ParamsFromProto is the inverse of ParamsToProto.
func ParamsFromProto(m *pb.Params) flock.Params {
	return flock.Params{
		CohesionRadius:    m.CohesionRadius,
		CohesionStrength:  m.CohesionStrength,
		AvoidanceRadius:   m.AvoidanceRadius,
		AvoidanceStrength: m.AvoidanceStrength,
		AlignmentRadius:   m.AlignmentRadius,
		AlignmentStrength: m.AlignmentStrength,
		MaxSpeed:          m.MaxSpeed,
		MaxForce:          m.MaxForce,
		BoundaryMargin:    m.BoundaryMargin,
		BoundaryStrength:  m.BoundaryStrength,
		FishSize:          m.FishSize,
		BoundaryAvoidance: m.BoundaryAvoidance,
	}
}

func vecToProto(v geometry.Vector2D) *pb.Vec2 {
	return &pb.Vec2{X: v.X, Y: v.Y}
}

func fishToProto(f *flock.Fish) *pb.FishState {
	return &pb.FishState{
		Pos:     vecToProto(f.Pos),
		Vel:     vecToProto(f.Vel),
		Heading: f.Heading,
	}
}

func statsToProto(s flock.Stats) *pb.FlockStats {
	return &pb.FlockStats{
		Polarization:     s.Polarization,
		MeanSpeed:        s.MeanSpeed,
		SpeedStdDev:      s.SpeedStdDev,
		MeanNeighborDist: s.MeanNeighborDist,
	}
}
