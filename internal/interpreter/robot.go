package interpreter

import (
	"fmt"
	"math/big"
)

// Direction is the cardinal heading of the robot.
type Direction int

// Clockwise order. Turning relies on it.
const (
	North Direction = iota
	East
	South
	West
)

const directionCount = 4

var directionNames = [directionCount]string{"NORTH", "EAST", "SOUTH", "WEST"}

// Right returns the next direction clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % directionCount
}

// Left returns the next direction counter-clockwise.
func (d Direction) Left() Direction {
	return (d + directionCount - 1) % directionCount
}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Robot represents robot position and heading on a 2D grid

type Robot struct {
	X, Y      *big.Int
	Direction Direction
}

func NewRobot() *Robot {
	return &Robot{X: new(big.Int), Y: new(big.Int), Direction: North}
}

// Move advances the robot distance cells along its heading.
func (r *Robot) Move(distance *big.Int) {
	switch r.Direction {
	case North:
		r.Y.Add(r.Y, distance)
	case East:
		r.X.Add(r.X, distance)
	case South:
		r.Y.Sub(r.Y, distance)
	case West:
		r.X.Sub(r.X, distance)
	}
}

func (r *Robot) String() string {
	return fmt.Sprintf("Position: (%s, %s), Direction: %s", r.X, r.Y, r.Direction)
}
