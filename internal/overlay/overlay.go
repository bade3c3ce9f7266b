// Package overlay implements the "Ask Tinu" panel state machine.
//
// The panel is Closed, Loading, Ready or Failed. Each Open or Retry starts a
// new cycle and hands the caller a Ticket; the caller performs exactly one
// activation request per ticket and feeds the outcome back through Resolve.
// Results whose ticket belongs to an earlier cycle are dropped, so a slow
// response can never reopen or overwrite a closed panel.
//
// Keyboard visibility is tracked separately and only affects Layout.
package overlay

import (
	"strings"

	"github.com/csheth/tinypal/internal/tinu"
)

// Phase is the active variant of the panel state.
type Phase int

const (
	Closed Phase = iota
	Loading
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Closed"
	}
}

// Ticket identifies one outstanding activation request.
type Ticket struct {
	Cycle   uint64
	Context string
	Topic   string
}

// State is a snapshot of the controller.
type State struct {
	Phase           Phase
	Context         string
	Topic           string
	Payload         tinu.Payload
	Err             *tinu.Failure
	KeyboardVisible bool
	Cycle           uint64
}

// Controller is the panel state machine. It is owned by a single screen and
// mutated only from the UI event loop.
type Controller struct {
	phase    Phase
	context  string
	topic    string
	payload  tinu.Payload
	err      *tinu.Failure
	keyboard bool
	cycle    uint64
}

// New returns a closed Controller.
func New() *Controller {
	return &Controller{}
}

// Open starts a cycle for (context, topic). It only acts from Closed; any
// other phase returns false and leaves the state untouched. A blank topic or
// context moves straight to Failed{MissingParameters} and yields no ticket.
func (c *Controller) Open(context, topic string) (Ticket, bool) {
	if c.phase != Closed {
		return Ticket{}, false
	}
	c.context = context
	c.topic = topic
	return c.begin()
}

// Retry re-enters Loading from Failed with the parameters of the failed cycle.
func (c *Controller) Retry() (Ticket, bool) {
	if c.phase != Failed {
		return Ticket{}, false
	}
	return c.begin()
}

func (c *Controller) begin() (Ticket, bool) {
	c.cycle++
	c.payload = tinu.Payload{}
	c.err = nil
	if strings.TrimSpace(c.topic) == "" || strings.TrimSpace(c.context) == "" {
		c.phase = Failed
		c.err = &tinu.Failure{Kind: tinu.ErrMissingParameters}
		return Ticket{}, false
	}
	c.phase = Loading
	return Ticket{Cycle: c.cycle, Context: c.context, Topic: c.topic}, true
}

// Resolve applies the outcome of ticket's request. It reports false and
// changes nothing when the ticket is stale or the panel is not Loading.
func (c *Controller) Resolve(ticket Ticket, result tinu.Result) bool {
	if c.phase != Loading || ticket.Cycle != c.cycle {
		return false
	}
	if result.Err != nil {
		c.phase = Failed
		c.err = result.Err
		return true
	}
	c.phase = Ready
	c.payload = result.Payload
	return true
}

// Close returns to Closed from any phase and invalidates outstanding tickets.
func (c *Controller) Close() {
	c.cycle++
	c.phase = Closed
	c.context = ""
	c.topic = ""
	c.payload = tinu.Payload{}
	c.err = nil
}

// SetKeyboardVisible records keyboard presence. It never alters the phase.
func (c *Controller) SetKeyboardVisible(visible bool) {
	c.keyboard = visible
}

// Phase returns the active variant.
func (c *Controller) Phase() Phase { return c.phase }

// IsOpen reports whether the panel is showing.
func (c *Controller) IsOpen() bool { return c.phase != Closed }

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{
		Phase:           c.phase,
		Context:         c.context,
		Topic:           c.topic,
		Payload:         c.payload,
		Err:             c.err,
		KeyboardVisible: c.keyboard,
		Cycle:           c.cycle,
	}
}

// Layout derives presentation for a screen of height rows.
func (c *Controller) Layout(height int) Layout {
	return DeriveLayout(c.phase, c.keyboard, height)
}
