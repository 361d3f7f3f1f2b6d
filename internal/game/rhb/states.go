package rhb

import "github.com/vovakirdan/tui-walk/internal/engine"

// State is implemented by the six character states only.
type State interface {
	// Context returns the physics record carried by the state.
	Context() Context
	// Clip returns the animation clip name in the sprite sheet.
	Clip() string
	isState()
}

// Idle is the character standing at the start line.
type Idle struct{ context Context }

// Running is the character moving right on the ground or a platform.
type Running struct{ context Context }

// Sliding is the character ducking under obstacles for one clip.
type Sliding struct{ context Context }

// Jumping is the character airborne after a jump.
type Jumping struct{ context Context }

// Falling is the character playing the knock-out clip.
type Falling struct{ context Context }

// KnockedOut is terminal.
type KnockedOut struct{ context Context }

func (s Idle) Context() Context       { return s.context }
func (s Running) Context() Context    { return s.context }
func (s Sliding) Context() Context    { return s.context }
func (s Jumping) Context() Context    { return s.context }
func (s Falling) Context() Context    { return s.context }
func (s KnockedOut) Context() Context { return s.context }

func (Idle) Clip() string       { return IdleFrameName }
func (Running) Clip() string    { return RunFrameName }
func (Sliding) Clip() string    { return SlidingFrameName }
func (Jumping) Clip() string    { return JumpingFrameName }
func (Falling) Clip() string    { return FallingFrameName }
func (KnockedOut) Clip() string { return FallingFrameName }

func (Idle) isState()       {}
func (Running) isState()    {}
func (Sliding) isState()    {}
func (Jumping) isState()    {}
func (Falling) isState()    {}
func (KnockedOut) isState() {}

// EndState is the result of an update that may finish the current clip:
// either the state continues (S) or it has completed into N.
type EndState[S, N State] struct {
	stay     S
	next     N
	complete bool
}

// Continue keeps the current state.
func Continue[S, N State](s S) EndState[S, N] {
	return EndState[S, N]{stay: s}
}

// Complete moves on to the successor state.
func Complete[S, N State](n N) EndState[S, N] {
	return EndState[S, N]{next: n, complete: true}
}

// Completed reports whether the update produced the successor.
func (e EndState[S, N]) Completed() bool {
	return e.complete
}

// Into returns whichever state the update produced.
func (e EndState[S, N]) Into() State {
	if e.complete {
		return e.next
	}
	return e.stay
}

// NewIdle creates the starting state at (StartingPoint, Floor).
func NewIdle(audio engine.Audio, jumpSound engine.Sound) Idle {
	return Idle{context: newContext(audio, jumpSound)}
}

// Update advances the idle animation.
func (s Idle) Update() Idle {
	s.context = s.context.Update(IdleFrames)
	return s
}

// Run starts the character moving right.
func (s Idle) Run() Running {
	return Running{context: s.context.resetFrame().runRight()}
}

// Update advances the running animation.
func (s Running) Update() Running {
	s.context = s.context.Update(RunningFrames)
	return s
}

// Slide starts a slide.
func (s Running) Slide() Sliding {
	return Sliding{context: s.context.resetFrame()}
}

// Jump launches the character upward and plays the jump sound.
func (s Running) Jump() Jumping {
	return Jumping{context: s.context.setVerticalVelocity(JumpSpeed).resetFrame().playJumpSound()}
}

// KnockOut stops the character and starts the fall.
func (s Running) KnockOut() Falling {
	return Falling{context: s.context.resetFrame().stop()}
}

// LandOn stands the character on a surface whose top is at y.
func (s Running) LandOn(y int) Running {
	s.context = s.context.setOn(y)
	return s
}

// Update advances the slide; the slide ends when the clip finishes.
func (s Sliding) Update() EndState[Sliding, Running] {
	s.context = s.context.Update(SlidingFrames)
	if s.context.Frame >= SlidingFrames {
		return Complete[Sliding](s.stand())
	}
	return Continue[Sliding, Running](s)
}

func (s Sliding) stand() Running {
	return Running{context: s.context.resetFrame()}
}

// KnockOut stops the character and starts the fall.
func (s Sliding) KnockOut() Falling {
	return Falling{context: s.context.resetFrame().stop()}
}

// LandOn keeps sliding on a surface whose top is at y.
func (s Sliding) LandOn(y int) Sliding {
	s.context = s.context.setOn(y)
	return s
}

// Update advances the jump; touching the floor lands the character.
func (s Jumping) Update() EndState[Jumping, Running] {
	s.context = s.context.Update(JumpingFrames)
	if s.context.Position.Y >= Floor {
		return Complete[Jumping](s.LandOn(Height))
	}
	return Continue[Jumping, Running](s)
}

// KnockOut stops the character and starts the fall.
func (s Jumping) KnockOut() Falling {
	return Falling{context: s.context.resetFrame().stop()}
}

// LandOn ends the jump on a surface whose top is at y.
func (s Jumping) LandOn(y int) Running {
	return Running{context: s.context.resetFrame().setOn(y)}
}

// Update advances the fall; the character is knocked out once the clip ends.
func (s Falling) Update() EndState[Falling, KnockedOut] {
	s.context = s.context.Update(FallingFrames)
	if s.context.Frame >= FallingFrames {
		return Complete[Falling](KnockedOut{context: s.context})
	}
	return Continue[Falling, KnockedOut](s)
}
