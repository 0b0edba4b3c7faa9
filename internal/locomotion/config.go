package locomotion

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid locomotion config")

// Config is the static tuning of a controller. Angles are in degrees.
type Config struct {
	MaxSpeed             float32 `json:"maxSpeed"`
	MaxClimbSpeed        float32 `json:"maxClimbSpeed"`
	MaxAcceleration      float32 `json:"maxAcceleration"`
	MaxAirAcceleration   float32 `json:"maxAirAcceleration"`
	MaxClimbAcceleration float32 `json:"maxClimbAcceleration"`

	JumpHeight  float32 `json:"jumpHeight"`
	MaxAirJumps int     `json:"maxAirJumps"`

	MaxGroundAngle float32 `json:"maxGroundAngle"`
	MaxStairsAngle float32 `json:"maxStairsAngle"`
	MaxClimbAngle  float32 `json:"maxClimbAngle"`

	MaxSnapSpeed  float32 `json:"maxSnapSpeed"`
	ProbeDistance float32 `json:"probeDistance"`

	ProbeMask  engine.LayerMask `json:"probeMask"`
	StairsMask engine.LayerMask `json:"stairsMask"`
	ClimbMask  engine.LayerMask `json:"climbMask"`

	// ClimbRegrabSteps is how many steps after a jump must pass before a wall
	// can be grabbed again.
	ClimbRegrabSteps int `json:"climbRegrabSteps"`
}

// DefaultConfig returns the stock tuning. Stairs and climbing are bound to the
// engine's stairs and climb layers, the ground probe ignores triggers and agents.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:             10,
		MaxClimbSpeed:        2,
		MaxAcceleration:      10,
		MaxAirAcceleration:   1,
		MaxClimbAcceleration: 20,
		JumpHeight:           2,
		MaxAirJumps:          0,
		MaxGroundAngle:       25,
		MaxStairsAngle:       50,
		MaxClimbAngle:        100,
		MaxSnapSpeed:         100,
		ProbeDistance:        1,
		ProbeMask:            engine.EverythingMask.Without(engine.LayerTrigger, engine.LayerAgent),
		StairsMask:           engine.MaskOf(engine.LayerStairs),
		ClimbMask:            engine.MaskOf(engine.LayerClimb),
		ClimbRegrabSteps:     2,
	}
}

// Validate checks every option against its allowed range and reports all violations.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v, lo, hi float32) {
		if !finite(v) || v < lo || v > hi {
			errs = append(errs, fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidConfig, name, v, lo, hi))
		}
	}
	check("maxSpeed", c.MaxSpeed, 0, 100)
	check("maxClimbSpeed", c.MaxClimbSpeed, 0, 100)
	check("maxAcceleration", c.MaxAcceleration, 0, 100)
	check("maxAirAcceleration", c.MaxAirAcceleration, 0, 100)
	check("maxClimbAcceleration", c.MaxClimbAcceleration, 0, 100)
	check("jumpHeight", c.JumpHeight, 0, 10)
	check("maxGroundAngle", c.MaxGroundAngle, 0, 90)
	check("maxStairsAngle", c.MaxStairsAngle, 0, 90)
	check("maxClimbAngle", c.MaxClimbAngle, 90, 180)
	check("maxSnapSpeed", c.MaxSnapSpeed, 0, 100)
	check("probeDistance", c.ProbeDistance, 0, math32.MaxFloat32)
	if c.MaxAirJumps < 0 || c.MaxAirJumps > 5 {
		errs = append(errs, fmt.Errorf("%w: maxAirJumps %d outside [0, 5]", ErrInvalidConfig, c.MaxAirJumps))
	}
	if c.ClimbRegrabSteps < 0 {
		errs = append(errs, fmt.Errorf("%w: climbRegrabSteps %d is negative", ErrInvalidConfig, c.ClimbRegrabSteps))
	}
	return errors.Join(errs...)
}

// thresholds are the cosines of the configured maximum angles.
type thresholds struct {
	minGroundDot float32
	minStairsDot float32
	minClimbDot  float32
}

func (c Config) thresholds() thresholds {
	return thresholds{
		minGroundDot: math32.Cos(c.MaxGroundAngle * rl.Deg2rad),
		minStairsDot: math32.Cos(c.MaxStairsAngle * rl.Deg2rad),
		minClimbDot:  math32.Cos(c.MaxClimbAngle * rl.Deg2rad),
	}
}
