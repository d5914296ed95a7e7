// Package servo models a motor hierarchy and a six-joint manipulator built
// from synchro servos.
package servo

import (
	"errors"
	"fmt"
	"math"
)

// ErrDisabled is returned when moving a disabled servo.
var ErrDisabled = errors.New("servo is disabled")

// Motor is the base motor state. Angles are in degrees.
type Motor struct {
	Angle        float64
	Speed        float64
	Acceleration float64
	serial       string
}

// NewMotor returns a motor with the given serial number, "unknown" if empty.
func NewMotor(serial string) Motor {
	if serial == "" {
		serial = "unknown"
	}
	return Motor{serial: serial}
}

func (m *Motor) Serial() string { return m.serial }

func (m *Motor) String() string {
	return fmt.Sprintf("Motor(serial=%s, angle=%.2fdeg)", m.serial, m.Angle)
}

// RotaryMotor is a motor limited to an angle range.
type RotaryMotor struct {
	Motor
	MinAngle float64
	MaxAngle float64
	Inertia  float64
}

func NewRotaryMotor(serial string) RotaryMotor {
	return RotaryMotor{Motor: NewMotor(serial), MinAngle: -180, MaxAngle: 180}
}

// SetAngleClamped sets the angle, clamped to [MinAngle, MaxAngle].
func (m *RotaryMotor) SetAngleClamped(angle float64) {
	m.Angle = math.Min(math.Max(angle, m.MinAngle), m.MaxAngle)
}

func (m *RotaryMotor) String() string {
	return fmt.Sprintf("RotaryMotor(angle=%.2fdeg, range=[%g,%g])", m.Angle, m.MinAngle, m.MaxAngle)
}

// SynchroServo is a rotary motor that moves in steps of Precision degrees.
type SynchroServo struct {
	RotaryMotor
	Power     float64
	Precision float64
	disabled  bool
}

// Option configures a SynchroServo.
type Option func(*SynchroServo)

func WithAngle(a float64) Option     { return func(s *SynchroServo) { s.Angle = a } }
func WithPower(p float64) Option     { return func(s *SynchroServo) { s.Power = p } }
func WithPrecision(p float64) Option { return func(s *SynchroServo) { s.Precision = p } }
func WithSerial(serial string) Option {
	return func(s *SynchroServo) { s.serial = serial }
}
func WithRange(lo, hi float64) Option {
	return func(s *SynchroServo) { s.MinAngle, s.MaxAngle = lo, hi }
}

// NewSynchroServo returns an enabled servo with power 10 and precision 0.1
// unless overridden.
func NewSynchroServo(opts ...Option) *SynchroServo {
	s := &SynchroServo{RotaryMotor: NewRotaryMotor(""), Power: 10, Precision: 0.1}
	for _, o := range opts {
		o(s)
	}
	if s.serial == "" {
		s.serial = "unknown"
	}
	return s
}

func (s *SynchroServo) Enable()         { s.disabled = false }
func (s *SynchroServo) Disable()        { s.disabled = true }
func (s *SynchroServo) IsEnabled() bool { return !s.disabled }

// MoveTo rounds angle to the nearest multiple of Precision and moves there,
// clamped to the servo's range.
func (s *SynchroServo) MoveTo(angle float64) error {
	if s.disabled {
		return ErrDisabled
	}
	target := angle
	if s.Precision > 0 {
		target = math.RoundToEven(angle/s.Precision) * s.Precision
	}
	s.SetAngleClamped(target)
	return nil
}

// Compare orders servos by power.
func (s *SynchroServo) Compare(o *SynchroServo) int {
	switch {
	case s.Power < o.Power:
		return -1
	case s.Power > o.Power:
		return 1
	}
	return 0
}

func (s *SynchroServo) String() string {
	status := "on"
	if s.disabled {
		status = "off"
	}
	return fmt.Sprintf("SynchroServo(power=%gW, angle=%.2fdeg, %s)", s.Power, s.Angle, status)
}
