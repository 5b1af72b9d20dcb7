package loop

// Layout constants, in logical units.
const (
	shipStartLift = 20 // gap under the ship's starting position, in addition to two ship heights
)

// Task names, used in logs.
const (
	taskRender  = "render"
	taskPhysics = "physics"
	taskScore   = "score"
)
