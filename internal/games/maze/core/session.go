package core

import (
	"errors"
	"fmt"
	"math/rand"

	platformcore "github.com/vovakirdan/tui-maze/internal/core"
)

// Status is the lifecycle state of a session.
type Status uint8

const (
	Running Status = iota
	Cleared
	GameOver
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Cleared:
		return "Cleared"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further steps can change the session.
func (s Status) Terminal() bool {
	return s == Cleared || s == GameOver
}

// EventKind names something notable that happened during a tick.
type EventKind uint8

const (
	EventItemPicked EventKind = iota
	EventDamaged
	EventCleared
	EventCaught
	EventDied
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventItemPicked:
		return "ItemPicked"
	case EventDamaged:
		return "Damaged"
	case EventCleared:
		return "Cleared"
	case EventCaught:
		return "Caught"
	case EventDied:
		return "Died"
	default:
		return "Unknown"
	}
}

// Event records one state change within a tick.
type Event struct {
	Kind EventKind
	Item ItemKind // Valid for EventItemPicked
	HP   int      // Player HP after the event
}

// StepResult describes what one tick did.
type StepResult struct {
	Tick   uint64
	Status Status
	Moved  bool
	Events []Event
}

// Params configures a session.
type Params struct {
	Gen GenParams

	PlayerSpeed      int
	PlayerSize       int
	StartHP          int
	MaxHP            int
	Damage           int
	DamageGuardTicks int

	Items     ItemRules
	ItemCount int
	ItemKinds []ItemKind
	ItemSize  int

	MobCount     int
	MobSpeed     int
	MobSize      int
	TrackerRatio float64

	SafeRadius  int
	MaxAttempts int
}

// DefaultParams returns the parameters of the standard game.
func DefaultParams() Params {
	return Params{
		Gen:              DefaultGenParams(),
		PlayerSpeed:      4,
		PlayerSize:       DefaultCellSize / 2,
		StartHP:          100,
		MaxHP:            100,
		Damage:           10,
		DamageGuardTicks: 60,
		Items: ItemRules{
			Heal:            20,
			ScoreValue:      10,
			WeaponTicks:     300,
			InvincibleTicks: 300,
		},
		ItemCount:    5,
		ItemKinds:    []ItemKind{ItemHeal, ItemScore},
		ItemSize:     DefaultCellSize,
		MobCount:     5,
		MobSpeed:     2,
		MobSize:      DefaultCellSize / 2,
		TrackerRatio: 0.3,
		SafeRadius:   3,
		MaxAttempts:  DefaultMaxAttempts,
	}
}

// Validate rejects parameters no session can be built from.
func (p Params) Validate() error {
	if err := p.Gen.Validate(); err != nil {
		return err
	}
	var errs []error
	if p.PlayerSpeed < 0 || p.MobSpeed < 0 {
		errs = append(errs, fmt.Errorf("speeds must be non-negative"))
	}
	if p.PlayerSize <= 0 || p.PlayerSize > p.Gen.CellSize {
		errs = append(errs, fmt.Errorf("player size %d must be in (0, %d]", p.PlayerSize, p.Gen.CellSize))
	}
	if p.MaxHP <= 0 || p.StartHP <= 0 || p.StartHP > p.MaxHP {
		errs = append(errs, fmt.Errorf("start hp %d must be in (0, max hp %d]", p.StartHP, p.MaxHP))
	}
	if p.Damage < 0 || p.DamageGuardTicks < 0 {
		errs = append(errs, fmt.Errorf("damage and guard ticks must be non-negative"))
	}
	if p.ItemCount > 0 && (len(p.ItemKinds) == 0 || p.ItemSize <= 0) {
		errs = append(errs, fmt.Errorf("items need at least one kind and a positive size"))
	}
	if p.MobCount > 0 && p.MobSize <= 0 {
		errs = append(errs, fmt.Errorf("mob size %d must be positive", p.MobSize))
	}
	if p.TrackerRatio < 0 || p.TrackerRatio > 1 {
		errs = append(errs, fmt.Errorf("tracker ratio %v must be in [0, 1]", p.TrackerRatio))
	}
	if p.ItemCount < 0 || p.MobCount < 0 {
		errs = append(errs, fmt.Errorf("counts must be non-negative"))
	}
	return errors.Join(errs...)
}

// Session owns one run: the grid, every entity, the timers and the RNG.
type Session struct {
	params Params
	rng    *rand.Rand
	grid   *Grid
	player Player
	mobs   []Mob
	items  []Item
	status Status
	tick   uint64
}

// NewSession generates a maze and spawns the player, items and mobs.
func NewSession(p Params) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(p.Gen.Seed))
	grid, err := generate(p.Gen, rng)
	if err != nil {
		return nil, err
	}
	return newSession(grid, p, rng)
}

// NewSessionOnGrid starts a session on an existing grid, such as one built
// with ParseGrid. The grid must pass Validate. Generation parameters other
// than the seed are ignored.
func NewSessionOnGrid(grid *Grid, p Params) (*Session, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	p.Gen.Rows, p.Gen.Cols, p.Gen.CellSize = grid.Rows(), grid.Cols(), grid.CellSize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return newSession(grid, p, rand.New(rand.NewSource(p.Gen.Seed)))
}

func newSession(grid *Grid, p Params, rng *rand.Rand) (*Session, error) {
	s := &Session{
		params: p,
		rng:    rng,
		grid:   grid,
		status: Running,
	}

	origin := grid.CellRect(grid.Start())
	inset := (grid.CellSize() - p.PlayerSize) / 2
	s.player = Player{
		Box:   platformcore.NewRect(origin.X+inset, origin.Y+inset, p.PlayerSize, p.PlayerSize),
		Speed: p.PlayerSpeed,
		HP:    p.StartHP,
		MaxHP: p.MaxHP,
	}

	placer := Placer{Grid: grid, Rng: rng, MaxAttempts: p.MaxAttempts}

	itemBoxes, err := placer.PlaceN(p.ItemCount, p.ItemSize, AvoidCells(grid.Start(), grid.Goal()))
	if err != nil {
		return nil, fmt.Errorf("spawn items: %w", err)
	}
	for _, box := range itemBoxes {
		kind := p.ItemKinds[rng.Intn(len(p.ItemKinds))]
		s.items = append(s.items, Item{Kind: kind, Box: box})
	}

	mobPred := AllOf(AvoidCells(grid.Start(), grid.Goal()), OutsideRadius(grid.Start(), p.SafeRadius))
	mobBoxes, err := placer.PlaceN(p.MobCount, p.MobSize, mobPred)
	if err != nil {
		return nil, fmt.Errorf("spawn mobs: %w", err)
	}
	for _, box := range mobBoxes {
		kind := Wanderer
		if rng.Float64() < p.TrackerRatio {
			kind = Tracker
		}
		s.mobs = append(s.mobs, Mob{Kind: kind, Box: box, Speed: p.MobSpeed, Facing: randomFacing(rng)})
	}

	return s, nil
}

// Grid returns the session's maze.
func (s *Session) Grid() *Grid { return s.grid }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Tick returns the number of steps simulated so far.
func (s *Session) Tick() uint64 { return s.tick }

// Params returns the parameters the session was built with.
func (s *Session) Params() Params { return s.params }

// Step advances the simulation by one tick.
func (s *Session) Step(intent Intent) StepResult {
	if s.status.Terminal() {
		return StepResult{Tick: s.tick, Status: s.status}
	}
	s.tick++
	res := StepResult{Tick: s.tick}

	intent = Intent{DX: platformcore.Sign(intent.DX), DY: platformcore.Sign(intent.DY)}
	probe := s.player.Box.Translate(intent.DX*s.player.Speed, intent.DY*s.player.Speed)
	if !s.grid.OverlapsWall(probe) {
		res.Moved = s.player.Box != probe
		s.player.Box = probe
	}

	if s.grid.OverlapsGoal(probe) {
		s.status = Cleared
		res.Events = append(res.Events, Event{Kind: EventCleared, HP: s.player.HP})
		res.Status = s.status
		return res
	}

	s.collectItems(probe, &res)

	if s.grid.OverlapsDamage(probe) && !s.player.Invincible() {
		dead := s.player.TakeDamage(s.params.Damage)
		s.player.Effects.Set(EffectDamageGuard, s.params.DamageGuardTicks)
		res.Events = append(res.Events, Event{Kind: EventDamaged, HP: s.player.HP})
		if dead {
			s.status = GameOver
			res.Events = append(res.Events, Event{Kind: EventDied, HP: s.player.HP})
		}
	}

	if s.status == Running {
		ctx := MoveContext{Grid: s.grid, Player: s.player.Box, Rng: s.rng}
		for i := range s.mobs {
			s.mobs[i].Advance(ctx)
		}
		for _, m := range s.mobs {
			if probe.Intersects(m.Box) {
				s.status = GameOver
				res.Events = append(res.Events, Event{Kind: EventCaught, HP: s.player.HP})
				break
			}
		}
	}

	s.player.Effects.Tick()
	res.Status = s.status
	return res
}

// collectItems applies and removes every item the probe overlaps.
func (s *Session) collectItems(probe platformcore.Rect, res *StepResult) {
	var picked []int
	for i, it := range s.items {
		if probe.Intersects(it.Box) {
			picked = append(picked, i)
		}
	}
	if len(picked) == 0 {
		return
	}

	for _, i := range picked {
		kind := s.items[i].Kind
		s.player.ApplyItem(kind, s.params.Items)
		res.Events = append(res.Events, Event{Kind: EventItemPicked, Item: kind, HP: s.player.HP})
	}

	kept := s.items[:0]
	next := 0
	for i, it := range s.items {
		if next < len(picked) && picked[next] == i {
			next++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
}
