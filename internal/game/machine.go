package game

import "github.com/vovakirdan/tui-walk/internal/engine"

// NewGameButton is the control shown when the run is over.
const NewGameButton = "<button id='new_game'>New Game</button>"

const newGameID = "new_game"

// machine is implemented by Ready, Walking and GameOver. Each owns the Walk
// exclusively; a transition hands it to the next state.
type machine interface {
	walk() *Walk
	draw(r engine.Renderer)
	phase() Phase
}

// Phase names the top-level state.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhaseWalking  Phase = "walking"
	PhaseGameOver Phase = "game_over"
)

// Ready waits at the start line for the first ArrowRight.
type Ready struct{ w *Walk }

// Walking is the run in progress.
type Walking struct{ w *Walk }

// GameOver waits for the new game button.
type GameOver struct {
	w       *Walk
	newGame <-chan struct{}
}

func (s Ready) walk() *Walk    { return s.w }
func (s Walking) walk() *Walk  { return s.w }
func (s GameOver) walk() *Walk { return s.w }

func (s Ready) draw(r engine.Renderer)    { s.w.draw(r) }
func (s Walking) draw(r engine.Renderer)  { s.w.draw(r) }
func (s GameOver) draw(r engine.Renderer) { s.w.draw(r) }

func (Ready) phase() Phase    { return PhaseReady }
func (Walking) phase() Phase  { return PhaseWalking }
func (GameOver) phase() Phase { return PhaseGameOver }

// endState is the result of a top-level update: stay in S or complete into N.
type endState[S, N machine] struct {
	stay     S
	next     N
	complete bool
}

func stay[S, N machine](s S) endState[S, N] {
	return endState[S, N]{stay: s}
}

func complete[S, N machine](n N) endState[S, N] {
	return endState[S, N]{next: n, complete: true}
}

func (e endState[S, N]) into() machine {
	if e.complete {
		return e.next
	}
	return e.stay
}

// step runs one tick of whichever state m is.
func step(m machine, keys *engine.KeyState) machine {
	switch s := m.(type) {
	case Ready:
		return s.update(keys).into()
	case Walking:
		return s.update(keys).into()
	case GameOver:
		return s.update().into()
	default:
		return m
	}
}

func (s Ready) update(keys *engine.KeyState) endState[Ready, Walking] {
	s.w.boy.Update()
	if keys.IsPressed(engine.KeyArrowRight) {
		return complete[Ready](s.startRunning())
	}
	return stay[Ready, Walking](s)
}

func (s Ready) startRunning() Walking {
	s.w.boy.RunRight()
	return Walking{w: s.w}
}

func (s Walking) update(keys *engine.KeyState) endState[Walking, GameOver] {
	if keys.IsPressed(engine.KeyArrowDown) {
		s.w.boy.Slide()
	}
	if keys.IsPressed(engine.KeySpace) {
		s.w.boy.Jump()
	}
	s.w.boy.Update()
	s.w.scroll()

	if s.w.knockedOut() {
		return complete[Walking](s.endGame())
	}
	return stay[Walking, GameOver](s)
}

// endGame shows the new game button and starts listening for clicks.
// Without a working UI the run simply stays over.
func (s Walking) endGame() GameOver {
	over := GameOver{w: s.w}
	if s.w.ui == nil {
		return over
	}
	if err := s.w.ui.Show(NewGameButton); err != nil {
		s.w.logger.Error("could not show new game button", "error", err)
		return over
	}
	clicks, err := s.w.ui.OnClick(newGameID)
	if err != nil {
		s.w.logger.Error("could not listen for new game clicks", "error", err)
		return over
	}
	over.newGame = clicks
	return over
}

func (s GameOver) update() endState[GameOver, Ready] {
	if s.newGamePressed() {
		return complete[GameOver](s.newGameState())
	}
	return stay[GameOver, Ready](s)
}

// newGamePressed polls the click channel without blocking. A closed or nil
// channel counts as not pressed.
func (s GameOver) newGamePressed() bool {
	select {
	case _, ok := <-s.newGame:
		return ok
	default:
		return false
	}
}

func (s GameOver) newGameState() Ready {
	if s.w.ui != nil {
		if err := s.w.ui.Hide(); err != nil {
			s.w.logger.Error("could not hide new game button", "error", err)
		}
	}
	return Ready{w: s.w.Reset()}
}
