// Package vehicle defines a small vehicle interface hierarchy.
package vehicle

import "fmt"

// Engine types accepted by a Car.
const (
	Petrol   = "petrol"
	Electric = "electric"
	Muscle   = "muscle power"
)

// Vehicle is anything with a top speed in km/h.
type Vehicle interface {
	MaxSpeed() float64
	VehicleType() string
}

// RoadVehicle is a vehicle with an engine.
type RoadVehicle interface {
	Vehicle
	EngineType() string
}

type Car struct {
	Brand  string
	speed  float64
	engine string
}

// NewCar returns a car; engine must be Petrol or Electric.
func NewCar(brand string, maxSpeed float64, engine string) (*Car, error) {
	if engine != Petrol && engine != Electric {
		return nil, fmt.Errorf("engine type must be %q or %q, got %q", Petrol, Electric, engine)
	}
	return &Car{Brand: brand, speed: maxSpeed, engine: engine}, nil
}

func (c *Car) MaxSpeed() float64   { return c.speed }
func (c *Car) VehicleType() string { return "car" }
func (c *Car) EngineType() string  { return c.engine }

func (c *Car) String() string {
	return fmt.Sprintf("Car(brand=%s, speed=%g km/h, engine=%s)", c.Brand, c.speed, c.engine)
}

type Bicycle struct {
	Brand string
	speed float64
}

func NewBicycle(brand string, maxSpeed float64) *Bicycle {
	return &Bicycle{Brand: brand, speed: maxSpeed}
}

func (b *Bicycle) MaxSpeed() float64   { return b.speed }
func (b *Bicycle) VehicleType() string { return "bicycle" }
func (b *Bicycle) EngineType() string  { return Muscle }

func (b *Bicycle) String() string {
	return fmt.Sprintf("Bicycle(brand=%s, speed=%g km/h, engine=%s)", b.Brand, b.speed, Muscle)
}

var (
	_ RoadVehicle = (*Car)(nil)
	_ RoadVehicle = (*Bicycle)(nil)
)
