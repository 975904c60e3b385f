package engine

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/constants"
	"github.com/ScaratP/TypingMonster/engine/fsm"
	"github.com/ScaratP/TypingMonster/events"
	"github.com/ScaratP/TypingMonster/status"
	"github.com/ScaratP/TypingMonster/systems"
	"github.com/ScaratP/TypingMonster/theme"
)

// Player-facing hints
const (
	HintCorrect      = "correct, keep going"
	HintKeepTyping   = "keep typing the remaining characters"
	HintWrongTarget  = "type the character of the monster the arrow points at"
	HintDifficultyUp = "difficulty increased by %d%%"
	HintGameOver     = "game over, final score %d"
)

// Provider is the read-only theme and level source, queried fresh on every use
type Provider interface {
	Theme() theme.Theme
	Level() theme.LevelConfig
	LevelID() int
	DifficultyID() string
	ScoreFactor() float64
	DifficultyIncreaseFactor() float64
}

// Option configures a Controller
type Option func(*Controller)

// WithTimeProvider drives the game clock from tp instead of wall time
func WithTimeProvider(tp TimeProvider) Option {
	return func(c *Controller) { c.clock = NewPausableClock(tp) }
}

// WithRand sets the random source for spawn placement and text draws
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithRenderer sets the per-tick render callback
func WithRenderer(fn RenderFunc) Option {
	return func(c *Controller) { c.render = fn }
}

// WithRegistry publishes metrics into reg
func WithRegistry(reg *status.Registry) Option {
	return func(c *Controller) { c.registry = reg }
}

// WithBounds sets the initial world size
func WithBounds(width, height float64) Option {
	return func(c *Controller) { c.bounds = Bounds{Width: width, Height: height} }
}

// Controller is the game loop: lifecycle, per-tick orchestration, scoring and floor detection
// Every method except PushKey must be called from a single goroutine (the Scheduler)
type Controller struct {
	provider Provider
	clock    *PausableClock
	timers   *Timers
	rng      *rand.Rand

	pop     *systems.Population
	matcher *systems.Matcher
	state   components.GameState
	fsm     *fsm.Machine[*Controller]

	input  *events.EventQueue
	output *events.EventQueue
	router *events.Router[time.Time]

	render RenderFunc
	bounds Bounds
	frame  int64

	sessionStart time.Time
	sessionTheme string

	// Cached metric pointers
	registry    *status.Registry
	statTicks   *atomic.Int64
	statScore   *atomic.Int64
	statActive  *atomic.Int64
	statSlots   *atomic.Int64
	statHits    *atomic.Int64
	statMisses  *atomic.Int64
	statTimers  *atomic.Int64
	statDropped *atomic.Int64
	statPaused  *atomic.Bool
	statDiff    *status.AtomicFloat
	statPhase   *status.AtomicString
	statThemeID *status.AtomicString
}

// NewController creates a controller in the NotStarted phase
func NewController(provider Provider, opts ...Option) (*Controller, error) {
	c := &Controller{
		provider: provider,
		timers:   NewTimers(),
		matcher:  systems.NewMatcher(),
		input:    events.NewEventQueue(),
		output:   events.NewEventQueue(),
		bounds:   Bounds{Width: constants.DefaultWorldWidth, Height: constants.DefaultWorldHeight},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = NewPausableClock(nil)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.registry == nil {
		c.registry = status.NewRegistry()
	}
	c.router = events.NewRouter[time.Time](c.output)
	c.pop = systems.NewPopulation(c.rng, c.bounds.Width, c.bounds.Height)
	c.bounds = Bounds{Width: c.pop.Width(), Height: c.pop.Height()}
	c.cacheMetrics()
	c.state.DifficultyMultiplier = constants.BaseDifficultyMultiplier

	m, err := newLifecycle(c)
	if err != nil {
		return nil, err
	}
	c.fsm = m
	c.syncPhase()
	return c, nil
}

func (c *Controller) cacheMetrics() {
	reg := c.registry
	c.statTicks = reg.Ints.Get(status.MetricTicks)
	c.statScore = reg.Ints.Get(status.MetricScore)
	c.statActive = reg.Ints.Get(status.MetricActive)
	c.statSlots = reg.Ints.Get(status.MetricSlots)
	c.statHits = reg.Ints.Get(status.MetricHits)
	c.statMisses = reg.Ints.Get(status.MetricMisses)
	c.statTimers = reg.Ints.Get(status.MetricTimers)
	c.statDropped = reg.Ints.Get(status.MetricDropped)
	c.statPaused = reg.Bools.Get(status.MetricPaused)
	c.statDiff = reg.Floats.Get(status.MetricDifficulty)
	c.statPhase = reg.Strings.Get(status.MetricPhase)
	c.statThemeID = reg.Strings.Get(status.MetricTheme)
}

// RegisterHandler subscribes a stats collaborator to outbound events
// Must be called before the scheduler starts
func (c *Controller) RegisterHandler(h events.Handler[time.Time]) {
	c.router.Register(h)
}

// SetRenderer replaces the render callback
func (c *Controller) SetRenderer(fn RenderFunc) {
	c.render = fn
}

// Registry returns the metrics registry
func (c *Controller) Registry() *status.Registry {
	return c.registry
}

// Clock returns the game clock
func (c *Controller) Clock() *PausableClock {
	return c.clock
}

// PushKey queues one keystroke for the next tick; safe from any goroutine
func (c *Controller) PushKey(r rune) {
	p := events.CharacterTypedPayloadPool.Get().(*events.CharacterTypedPayload)
	p.Char = r
	c.input.Push(events.GameEvent{
		Type:      events.EventCharacterTyped,
		Payload:   p,
		Timestamp: c.clock.RealTime(),
	})
}

// --- Lifecycle commands ---

// Start begins a session from NotStarted
func (c *Controller) Start() error { return c.fire(TriggerStart) }

// Pause freezes a running session
func (c *Controller) Pause() error { return c.fire(TriggerPause) }

// Resume continues a paused session
func (c *Controller) Resume() error { return c.fire(TriggerResume) }

// Restart begins a fresh session from Running, Paused or Ended
func (c *Controller) Restart() error { return c.fire(TriggerRestart) }

// End terminates a running or paused session
func (c *Controller) End() error { return c.fire(TriggerEnd) }

// Acknowledge returns from Ended to NotStarted
func (c *Controller) Acknowledge() error { return c.fire(TriggerAcknowledge) }

// Settled reports whether the game-over screen has been up long enough to accept Enter
func (c *Controller) Settled() bool {
	return c.state.Phase == components.PhaseEnded &&
		c.clock.Now().Sub(c.state.EndedAt) >= constants.GameOverSettleDelay
}

// TogglePause pauses a running session or resumes a paused one
func (c *Controller) TogglePause() error {
	switch c.state.Phase {
	case components.PhaseRunning:
		return c.Pause()
	case components.PhasePaused:
		return c.Resume()
	default:
		return fmt.Errorf("toggle pause in %s: %w", c.state.Phase, fsm.ErrNoTransition)
	}
}

func (c *Controller) fire(trigger string) error {
	from := c.state.Phase
	if err := c.fsm.Fire(c, trigger); err != nil {
		return fmt.Errorf("lifecycle %s: %w", trigger, err)
	}
	c.syncPhase()
	log.Printf("[LIFECYCLE] %s: %s -> %s", trigger, from, c.state.Phase)
	return nil
}

func (c *Controller) syncPhase() {
	if p, ok := components.ParsePhase(c.fsm.State()); ok {
		c.state.Phase = p
	}
}

// --- Queries ---

// Phase returns the lifecycle phase
func (c *Controller) Phase() components.Phase {
	return c.state.Phase
}

// State returns a copy of the session state
func (c *Controller) State() components.GameState {
	return c.state
}

// Population exposes the monster arena for inspection
func (c *Controller) Population() *systems.Population {
	return c.pop
}

// PendingTimers returns the number of registered timers
func (c *Controller) PendingTimers() int {
	return c.timers.Len()
}

// Bounds returns the world size
func (c *Controller) Bounds() Bounds {
	return c.bounds
}

// SetBounds resizes the world; existing monsters keep their coordinates
func (c *Controller) SetBounds(width, height float64) {
	c.pop.SetBounds(width, height)
	c.bounds = Bounds{Width: c.pop.Width(), Height: c.pop.Height()}
}

// --- Session actions (bound by the lifecycle graph) ---

func (c *Controller) resetSession() {
	c.timers.CancelAll()
	c.discardInput()
	c.pop.Clear()
	c.state.Reset(constants.BaseDifficultyMultiplier)
	c.sessionTheme = ""
}

func (c *Controller) cancelTimers() {
	if n := c.timers.CancelAll(); n > 0 {
		log.Printf("[LIFECYCLE] cancelled %d timers", n)
	}
}

func (c *Controller) beginSession() {
	c.discardInput()
	c.state.Reset(constants.BaseDifficultyMultiplier)

	now := c.clock.Now()
	c.state.Started = true
	c.state.LastDifficultyIncreaseAt = now
	c.state.LastCleanupAt = now
	c.sessionStart = now

	level := c.provider.Level()
	th := c.provider.Theme()
	c.pop.SpawnInitial(level, th)

	c.timers.Every("escalate", constants.DifficultyIncreaseInterval, now, c.escalate)
	c.timers.Every("cleanup", constants.CleanupInterval, now, c.cleanup)

	c.sessionTheme = th.ID
	c.emit(events.EventThemeUsed, &events.ThemeUsedPayload{ThemeID: th.ID}, now)
	c.emit(events.EventGameStarted, &events.GameStartedPayload{
		ThemeID:    th.ID,
		Level:      c.provider.LevelID(),
		Difficulty: c.provider.DifficultyID(),
	}, now)

	log.Printf("[SESSION] start theme=%s level=%d difficulty=%s monsters=%d",
		th.ID, c.provider.LevelID(), c.provider.DifficultyID(), c.pop.Len())
}

func (c *Controller) reportGameEnded() {
	now := c.clock.Now()
	c.state.Started = false
	c.state.EndedAt = now
	c.state.Hint = fmt.Sprintf(HintGameOver, c.state.Score)
	c.emit(events.EventGameEnded, &events.GameEndedPayload{
		Score:    c.state.Score,
		Duration: now.Sub(c.sessionStart),
	}, now)
	log.Printf("[SESSION] ended score=%d", c.state.Score)
}

// --- Timers ---

func (c *Controller) escalate(now time.Time) {
	factor := c.provider.DifficultyIncreaseFactor()
	c.state.DifficultyMultiplier += factor
	c.state.LastDifficultyIncreaseAt = now
	c.pop.Escalate(factor)
	spawned := c.pop.TopUp(c.provider.Level(), c.provider.Theme(), c.state.DifficultyMultiplier)

	c.state.Hint = fmt.Sprintf(HintDifficultyUp, int(math.Round(factor*100)))
	c.emit(events.EventDifficultyIncreased, &events.DifficultyIncreasedPayload{
		Multiplier: c.state.DifficultyMultiplier,
		Factor:     factor,
	}, now)
	log.Printf("[DIFFICULTY] multiplier=%.2f spawned=%d", c.state.DifficultyMultiplier, spawned)
}

func (c *Controller) cleanup(now time.Time) {
	level := c.provider.Level()
	th := c.provider.Theme()
	recycled := c.pop.RecycleCheck(level, th)
	spawned := c.pop.TopUp(level, th, c.state.DifficultyMultiplier)
	c.state.LastCleanupAt = now
	if recycled > 0 || spawned > 0 {
		log.Printf("[POPULATION] recycled=%d spawned=%d active=%d", recycled, spawned, c.pop.ActiveCount())
	}
}

func (c *Controller) scheduleRecycle(slot int, token uint64, now time.Time) {
	c.timers.After("recycle", constants.RecycleDelay, now, func(time.Time) {
		c.pop.RecycleAfterDestroy(slot, token, c.provider.Level(), c.provider.Theme())
	})
}

// --- Tick ---

// Tick runs one game loop iteration and renders one frame
// Running: timers, input against the re-resolved target, movement, floor check
// Other phases: keystrokes are discarded and nothing is mutated
func (c *Controller) Tick() {
	c.frame++
	now := c.clock.Now()

	if c.state.Phase == components.PhaseRunning {
		c.runningTick(now)
	} else {
		c.discardInput()
	}

	c.router.DispatchAll(now)
	c.publishMetrics()

	if c.render != nil {
		c.render(c.Frame())
	}
}

func (c *Controller) runningTick(now time.Time) {
	if id := c.provider.Theme().ID; id != c.sessionTheme {
		c.sessionTheme = id
		c.emit(events.EventThemeUsed, &events.ThemeUsedPayload{ThemeID: id}, now)
	}

	c.timers.Fire(now)
	c.processInput(now)

	c.pop.Advance()

	floor := c.bounds.Floor(constants.BottomBarHeight)
	if slot, hit := c.pop.FloorHit(floor); hit {
		log.Printf("[SESSION] monster %d reached the floor at y=%.1f", slot, c.pop.At(slot).Y)
		if err := c.End(); err != nil {
			log.Printf("[SESSION] end on floor hit: %v", err)
		}
	}
}

func (c *Controller) processInput(now time.Time) {
	for _, ev := range c.input.Consume() {
		p, ok := ev.Payload.(*events.CharacterTypedPayload)
		if !ok {
			continue
		}
		r := p.Char
		events.CharacterTypedPayloadPool.Put(p)
		c.handleKey(r, now)
	}
}

// handleKey applies one keystroke against the target resolved at this moment
func (c *Controller) handleKey(r rune, now time.Time) {
	idx, ok := systems.SelectTarget(c.pop.Monsters())
	if !ok {
		c.state.Hint = HintWrongTarget
		c.emit(events.EventKeyTyped, &events.KeyTypedPayload{Char: r}, now)
		return
	}

	th := c.provider.Theme()
	m := c.pop.At(idx)
	if !c.matcher.Matches(th, m, r) {
		expected, _ := m.Head()
		c.state.Hint = HintWrongTarget
		c.statMisses.Add(1)
		c.emit(events.EventKeyTyped, &events.KeyTypedPayload{Char: r}, now)
		c.emit(events.EventMiss, &events.MissPayload{Char: r, Expected: expected}, now)
		return
	}

	completed := c.matcher.Apply(m)
	c.statHits.Add(1)
	c.emit(events.EventKeyTyped, &events.KeyTypedPayload{Char: r, Hit: true}, now)

	if !completed {
		if th.FirstCharOnlyMatch {
			c.state.Hint = HintKeepTyping
		} else {
			c.state.Hint = HintCorrect
		}
		return
	}

	points := int(math.Ceil(c.provider.ScoreFactor() * c.state.DifficultyMultiplier))
	c.state.Score += points
	text := m.TypedText()
	token := c.pop.Destroy(idx)
	c.scheduleRecycle(idx, token, now)
	c.state.Hint = HintCorrect

	c.emit(events.EventMonsterCompleted, &events.MonsterCompletedPayload{
		Slot:   idx,
		Text:   text,
		Points: points,
		Score:  c.state.Score,
	}, now)
}

func (c *Controller) discardInput() {
	for _, ev := range c.input.Consume() {
		if p, ok := ev.Payload.(*events.CharacterTypedPayload); ok {
			events.CharacterTypedPayloadPool.Put(p)
		}
	}
}

// emit queues an outbound event; types nobody subscribes to are skipped
func (c *Controller) emit(t events.EventType, payload any, now time.Time) {
	if !c.router.HasHandlers(t) {
		return
	}
	c.output.Push(events.GameEvent{Type: t, Payload: payload, Frame: c.frame, Timestamp: now})
}

func (c *Controller) publishMetrics() {
	c.statTicks.Store(c.frame)
	c.statScore.Store(int64(c.state.Score))
	c.statActive.Store(int64(c.pop.ActiveCount()))
	c.statSlots.Store(int64(c.pop.Len()))
	c.statTimers.Store(int64(c.timers.Len()))
	c.statDropped.Store(int64(c.input.Dropped()))
	c.statPaused.Store(c.state.Paused)
	c.statDiff.Store(c.state.DifficultyMultiplier)
	c.statPhase.Store(c.state.Phase.String())
	c.statThemeID.Store(c.sessionTheme)
}

// Frame builds the current read-only view
func (c *Controller) Frame() Frame {
	monsters := c.pop.Snapshot()
	target := systems.NoTarget
	if c.state.Phase == components.PhaseRunning || c.state.Phase == components.PhasePaused {
		if idx, ok := systems.SelectTarget(monsters); ok {
			target = idx
		}
	}
	return Frame{
		Tick:                 c.frame,
		Monsters:             monsters,
		Target:               target,
		Score:                c.state.Score,
		ThemeID:              c.provider.Theme().ID,
		Level:                c.provider.LevelID(),
		Difficulty:           c.provider.DifficultyID(),
		DifficultyMultiplier: c.state.DifficultyMultiplier,
		Phase:                c.state.Phase,
		Paused:               c.state.Paused,
		Hint:                 c.state.Hint,
		Bounds:               c.bounds,
		Floor:                c.bounds.Floor(constants.BottomBarHeight),
	}
}
