package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rogersnm/labkit/internal/collections"
	"github.com/rogersnm/labkit/internal/plugin"
	"github.com/rogersnm/labkit/internal/servo"
	"github.com/rogersnm/labkit/internal/vehicle"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the queue/stack, servo and vehicle types",
}

var demoCollectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Exercise the queue and the stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "=== Queue ===")
		var q collections.Queue[string]
		for _, s := range []string{"first", "second", "third"} {
			q.Enqueue(s)
		}
		fmt.Fprintln(out, "Queue:", q.String())
		head, err := q.Peek()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Front element:", head)
		removed, err := q.Dequeue()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Dequeued:", removed)
		fmt.Fprintln(out, "After dequeue:", q.String())
		fmt.Fprintln(out, "Size:", q.Len())

		fmt.Fprintln(out, "\n=== Stack ===")
		var s collections.Stack[string]
		for _, v := range []string{"A", "B", "C"} {
			s.Push(v)
		}
		fmt.Fprintln(out, "Stack:", s.String())
		top, err := s.Peek()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Top element:", top)
		popped, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Popped:", popped)
		fmt.Fprintln(out, "After pop:", s.String())
		fmt.Fprintln(out, "Size:", s.Len())
		return nil
	},
}

var demoServoCmd = &cobra.Command{
	Use:   "servo",
	Short: "Move a six-joint manipulator",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		servos := []*servo.SynchroServo{
			servo.NewSynchroServo(servo.WithPower(10), servo.WithPrecision(0.5)),
			servo.NewSynchroServo(servo.WithAngle(10), servo.WithPower(15), servo.WithPrecision(0.5)),
			servo.NewSynchroServo(servo.WithAngle(-5), servo.WithPower(12), servo.WithPrecision(0.2)),
			servo.NewSynchroServo(servo.WithAngle(20), servo.WithPower(8), servo.WithPrecision(0.1)),
			servo.NewSynchroServo(servo.WithAngle(5), servo.WithPower(11), servo.WithPrecision(0.5)),
			servo.NewSynchroServo(servo.WithPower(9), servo.WithPrecision(0.5)),
		}
		m, err := servo.NewManipulator(servos...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Initial:", m)
		fmt.Fprintln(out, "J2 stronger than J3?", servos[1].Compare(servos[2]) > 0)
		fmt.Fprintln(out, "J4 weaker than J1?", servos[3].Compare(servos[0]) < 0)

		moved, err := m.Add([]float64{5, -3, 2, 0, 1, -2})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "After joint deltas (new):", moved)
		fmt.Fprintln(out, "Original unchanged:", m)

		shifted, err := m.Add([]float64{0.5, 0, -0.2})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "After displacement (new):", shifted)

		if err := m.AddInPlace([]float64{1, 1, 1, 1, 1, 1}); err != nil {
			return err
		}
		fmt.Fprintln(out, "Original after in-place add:", m)
		return nil
	},
}

var demoVehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Describe a car and a bicycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		car, err := vehicle.NewCar("Tesla", 250, vehicle.Electric)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, v := range []vehicle.RoadVehicle{car, vehicle.NewBicycle("Stels", 40)} {
			describeVehicle(out, v)
		}
		return nil
	},
}

func describeVehicle(out io.Writer, v vehicle.RoadVehicle) {
	fmt.Fprintln(out, v)
	fmt.Fprintf(out, "  type: %s, max speed: %g km/h, engine: %s\n", v.VehicleType(), v.MaxSpeed(), v.EngineType())
}

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Run string plugins from the registry",
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range plugin.Builtin().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var pluginRunCmd = &cobra.Command{
	Use:   "run <name> <text>...",
	Short: "Apply a plugin to text",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := plugin.Builtin()
		p, err := reg.New(args[0])
		if err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(reg.Names(), ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.Execute(strings.Join(args[1:], " ")))
		return nil
	},
}

func init() {
	demoCmd.AddCommand(demoCollectionsCmd)
	demoCmd.AddCommand(demoServoCmd)
	demoCmd.AddCommand(demoVehiclesCmd)
	rootCmd.AddCommand(demoCmd)

	pluginCmd.AddCommand(pluginListCmd)
	pluginCmd.AddCommand(pluginRunCmd)
	rootCmd.AddCommand(pluginCmd)
}
