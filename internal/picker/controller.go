package picker

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/anlythree/foodpicker/internal/food"
	"github.com/anlythree/foodpicker/internal/logging"
)

// Observer receives the state after each controller operation.
type Observer func(Snapshot)

// Controller owns the selection state for one session.
type Controller struct {
	catalog *food.Catalog
	policy  NutritionPolicy
	rng     *rand.Rand
	log     *zap.Logger

	selected      *food.Item
	showNutrition bool

	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithSeed makes the draw sequence deterministic.
func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand supplies the random source used for draws.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithNutritionPolicy sets what Pick does with an open nutrition panel.
func WithNutritionPolicy(p NutritionPolicy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// WithInitialSelection starts the session showing the named food instead of
// Idle. Unknown names are ignored and the session starts Idle.
func WithInitialSelection(name string) Option {
	return func(c *Controller) {
		if item, ok := c.catalog.Find(name); ok {
			c.selected = &item
		}
	}
}

// WithLogger sets the logger used for transition records.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a controller in the Idle state. A nil catalog behaves as an
// empty one.
func New(catalog *food.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		policy:  KeepNutrition,
		log:     logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// Catalog returns the catalog the controller draws from.
func (c *Controller) Catalog() *food.Catalog {
	return c.catalog
}

// Policy returns the controller's nutrition policy.
func (c *Controller) Policy() NutritionPolicy {
	return c.policy
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{ShowNutrition: c.showNutrition}
	if c.selected != nil {
		item := *c.selected
		s.Selected = &item
	}
	return s
}

// State returns the current coarse state.
func (c *Controller) State() State {
	return c.Snapshot().State()
}

// Pick selects a random food other than the current one. With a single-item
// catalog the same item is selected again. With an empty catalog the state is
// left untouched and ErrEmptyCatalog is returned.
func (c *Controller) Pick() (food.Item, error) {
	n := c.catalog.Len()
	if n == 0 {
		return food.Item{}, ErrEmptyCatalog
	}

	from := c.State()
	item := c.draw(n)
	c.selected = &item
	if c.policy == ResetNutrition {
		c.showNutrition = false
	}

	c.changed("pick", from)
	return item, nil
}

// draw returns a uniformly random item, excluding the current selection
// whenever another candidate exists. Names identify items.
func (c *Controller) draw(n int) food.Item {
	if c.selected == nil || n == 1 {
		return c.catalog.At(c.rng.IntN(n))
	}

	candidates := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if c.catalog.At(i).Name != c.selected.Name {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return *c.selected
	}
	return c.catalog.At(candidates[c.rng.IntN(len(candidates))])
}

// Reset returns to Idle.
func (c *Controller) Reset() {
	from := c.State()
	c.selected = nil
	c.showNutrition = false
	c.changed("reset", from)
}

// ToggleNutrition opens or closes the nutrition panel. It returns the new
// panel state. While Idle there is no panel and the call does nothing.
func (c *Controller) ToggleNutrition() bool {
	if c.selected == nil {
		return false
	}
	from := c.State()
	c.showNutrition = !c.showNutrition
	c.changed("toggle_nutrition", from)
	return c.showNutrition
}

// Subscribe registers an observer. Observers run synchronously, in
// subscription order, after every state change. The returned function removes
// the observer; calling it more than once is harmless.
func (c *Controller) Subscribe(fn Observer) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, subscription{id: id, fn: fn})

	return func() {
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) changed(op string, from State) {
	snap := c.Snapshot()
	logging.LogTransition(c.log, op, from.String(), snap.State().String(), snap.SelectedName(), snap.ShowNutrition)

	// Observers may unsubscribe while being notified.
	observers := make([]subscription, len(c.observers))
	copy(observers, c.observers)
	for _, s := range observers {
		s.fn(snap)
	}
}
