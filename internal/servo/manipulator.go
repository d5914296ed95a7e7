package servo

import (
	"fmt"
	"strings"
)

// Joints is the number of servos in a manipulator.
const Joints = 6

var displacementFactors = [Joints]float64{0.2, 0.15, 0.15, 0.2, 0.15, 0.15}

// Manipulator is a six-joint arm.
type Manipulator struct {
	servos []*SynchroServo
}

// NewManipulator builds a manipulator from exactly six servos, or six
// default servos when none are given.
func NewManipulator(servos ...*SynchroServo) (*Manipulator, error) {
	if len(servos) == 0 {
		servos = make([]*SynchroServo, Joints)
		for i := range servos {
			servos[i] = NewSynchroServo()
		}
	}
	if len(servos) != Joints {
		return nil, fmt.Errorf("manipulator requires exactly %d servos, got %d", Joints, len(servos))
	}
	return &Manipulator{servos: append([]*SynchroServo(nil), servos...)}, nil
}

// Joints returns the servos in joint order.
func (m *Manipulator) Joints() []*SynchroServo {
	return append([]*SynchroServo(nil), m.servos...)
}

// Copy returns a manipulator with copies of every servo.
func (m *Manipulator) Copy() *Manipulator {
	c := &Manipulator{servos: make([]*SynchroServo, len(m.servos))}
	for i, s := range m.servos {
		dup := *s
		c.servos[i] = &dup
	}
	return c
}

// MoveJoints moves each joint by the matching delta.
func (m *Manipulator) MoveJoints(deltas []float64) error {
	if len(deltas) != Joints {
		return fmt.Errorf("need %d joint deltas, got %d", Joints, len(deltas))
	}
	for i, s := range m.servos {
		if err := s.MoveTo(s.Angle + deltas[i]); err != nil {
			return fmt.Errorf("joint %d: %w", i+1, err)
		}
	}
	return nil
}

// Add returns a moved copy of m. Six values are per-joint deltas; three
// values are a displacement (dx, dy, dz) spread over the joints.
func (m *Manipulator) Add(vec []float64) (*Manipulator, error) {
	var deltas []float64
	switch len(vec) {
	case Joints:
		deltas = vec
	case 3:
		total := vec[0] + vec[1] + vec[2]
		deltas = make([]float64, Joints)
		for i, f := range displacementFactors {
			deltas[i] = total * f
		}
	default:
		return nil, fmt.Errorf("unsupported vector length %d: must be 3 or %d", len(vec), Joints)
	}
	next := m.Copy()
	if err := next.MoveJoints(deltas); err != nil {
		return nil, err
	}
	return next, nil
}

// AddInPlace applies Add to m itself. m is unchanged on error.
func (m *Manipulator) AddInPlace(vec []float64) error {
	next, err := m.Add(vec)
	if err != nil {
		return err
	}
	m.servos = next.servos
	return nil
}

func (m *Manipulator) String() string {
	parts := make([]string, len(m.servos))
	for i, s := range m.servos {
		parts[i] = fmt.Sprintf("J%d:%.1fdeg", i+1, s.Angle)
	}
	return "Manipulator(" + strings.Join(parts, ", ") + ")"
}
