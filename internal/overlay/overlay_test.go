package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/csheth/tinypal/internal/tinu"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func readyPayload() tinu.Payload {
	return tinu.Payload{
		Cards:       []tinu.Card{{Title: "Script", Content: "Say it calmly."}},
		ContextInfo: "Context",
		Chips:       []tinu.Chip{{Label: "He is 3", Glyph: "🧒"}},
	}
}

func TestOpenEntersLoadingWithTicket(t *testing.T) {
	c := New()
	ticket, ok := c.Open("dyk_card", "screen_time")
	require.True(t, ok)
	assert.Equal(t, "dyk_card", ticket.Context)
	assert.Equal(t, "screen_time", ticket.Topic)

	state := c.State()
	assert.Equal(t, Loading, state.Phase)
	assert.Equal(t, "dyk_card", state.Context)
	assert.Equal(t, "screen_time", state.Topic)
	assert.Equal(t, ticket.Cycle, state.Cycle)
}

func TestOpenTwiceIssuesOneRequest(t *testing.T) {
	c := New()
	first, ok := c.Open("dyk_card", "X")
	require.True(t, ok)

	second, ok := c.Open("flash_card", "Y")
	assert.False(t, ok)
	assert.Equal(t, Ticket{}, second)

	state := c.State()
	assert.Equal(t, Loading, state.Phase)
	assert.Equal(t, "dyk_card", state.Context)
	assert.Equal(t, "X", state.Topic)
	assert.Equal(t, first.Cycle, state.Cycle)
}

func TestOpenIgnoredWhileReadyOrFailed(t *testing.T) {
	c := New()
	ticket, _ := c.Open("dyk_card", "X")
	require.True(t, c.Resolve(ticket, tinu.Succeeded(readyPayload())))
	_, ok := c.Open("dyk_card", "Z")
	assert.False(t, ok)
	assert.Equal(t, "X", c.State().Topic)

	c.Close()
	ticket, _ = c.Open("dyk_card", "X")
	require.True(t, c.Resolve(ticket, tinu.Failed(&tinu.Failure{Kind: tinu.ErrUnknown})))
	_, ok = c.Open("dyk_card", "Z")
	assert.False(t, ok)
	assert.Equal(t, Failed, c.Phase())
}

func TestOpenWithEmptyTopicFailsWithoutRequest(t *testing.T) {
	c := New()
	ticket, ok := c.Open("dyk_card", "")
	assert.False(t, ok)
	assert.Equal(t, Ticket{}, ticket)

	state := c.State()
	assert.Equal(t, Failed, state.Phase)
	require.NotNil(t, state.Err)
	assert.Equal(t, tinu.ErrMissingParameters, state.Err.Kind)

	_, ok = c.Retry()
	assert.False(t, ok, "retry with the same missing topic must not issue a request")
	assert.Equal(t, tinu.ErrMissingParameters, c.State().Err.Kind)
}

func TestOpenWithBlankContextFails(t *testing.T) {
	c := New()
	_, ok := c.Open("  ", "topic")
	assert.False(t, ok)
	assert.Equal(t, tinu.ErrMissingParameters, c.State().Err.Kind)
}

func TestResolveSuccessAndFailure(t *testing.T) {
	c := New()
	ticket, _ := c.Open("dyk_card", "X")
	assert.True(t, c.Resolve(ticket, tinu.Succeeded(readyPayload())))
	state := c.State()
	assert.Equal(t, Ready, state.Phase)
	assert.Equal(t, readyPayload(), state.Payload)
	assert.Nil(t, state.Err)
	assert.False(t, c.Resolve(ticket, tinu.Succeeded(tinu.Payload{})), "a ticket resolves at most once")
}

func TestResponseAfterCloseIsDiscarded(t *testing.T) {
	c := New()
	ticket, _ := c.Open("dyk_card", "X")
	c.Close()

	assert.False(t, c.Resolve(ticket, tinu.Succeeded(readyPayload())))
	state := c.State()
	assert.Equal(t, Closed, state.Phase)
	assert.True(t, state.Payload.Empty())
}

func TestStaleResponseDoesNotLeakIntoNewCycle(t *testing.T) {
	c := New()
	stale, _ := c.Open("dyk_card", "X")
	c.Close()
	fresh, ok := c.Open("dyk_card", "Y")
	require.True(t, ok)
	require.NotEqual(t, stale.Cycle, fresh.Cycle)

	assert.False(t, c.Resolve(stale, tinu.Succeeded(readyPayload())))
	assert.Equal(t, Loading, c.Phase())
	assert.Equal(t, "Y", c.State().Topic)

	assert.True(t, c.Resolve(fresh, tinu.Failed(&tinu.Failure{Kind: tinu.ErrNetworkUnavailable})))
	assert.Equal(t, Failed, c.Phase())
}

func TestServerErrorThenRetryReusesParameters(t *testing.T) {
	c := New()
	first, _ := c.Open("c", "t")
	c.Resolve(first, tinu.Failed(&tinu.Failure{Kind: tinu.ErrServer, Status: 500}))

	state := c.State()
	require.Equal(t, Failed, state.Phase)
	assert.Equal(t, tinu.ErrServer, state.Err.Kind)
	assert.Equal(t, 500, state.Err.Status)

	retry, ok := c.Retry()
	require.True(t, ok)
	assert.Equal(t, "c", retry.Context)
	assert.Equal(t, "t", retry.Topic)
	assert.Greater(t, retry.Cycle, first.Cycle)
	assert.Equal(t, Loading, c.Phase())
	assert.Nil(t, c.State().Err)

	assert.False(t, c.Resolve(first, tinu.Succeeded(readyPayload())), "the failed cycle's ticket is stale after retry")
}

func TestRetryOnlyFromFailed(t *testing.T) {
	c := New()
	_, ok := c.Retry()
	assert.False(t, ok)

	ticket, _ := c.Open("c", "t")
	_, ok = c.Retry()
	assert.False(t, ok)
	c.Resolve(ticket, tinu.Succeeded(readyPayload()))
	_, ok = c.Retry()
	assert.False(t, ok)
	assert.Equal(t, Ready, c.Phase())
}

func TestCloseDiscardsPayload(t *testing.T) {
	c := New()
	ticket, _ := c.Open("c", "t")
	c.Resolve(ticket, tinu.Succeeded(readyPayload()))
	c.Close()

	state := c.State()
	assert.Equal(t, Closed, state.Phase)
	assert.True(t, state.Payload.Empty())
	assert.Empty(t, state.Topic)
	assert.False(t, c.IsOpen())

	ticket, _ = c.Open("c", "t")
	assert.True(t, c.State().Payload.Empty(), "payload is not cached across opens")
	assert.Equal(t, Loading, c.Phase())
	_ = ticket
}

func TestKeyboardToggleDuringLoading(t *testing.T) {
	c := New()
	ticket, _ := c.Open("dyk_card", "X")
	before := c.State()

	c.SetKeyboardVisible(true)
	after := c.State()
	assert.Equal(t, Loading, after.Phase)
	assert.Equal(t, before.Cycle, after.Cycle, "no new request cycle")
	assert.True(t, after.KeyboardVisible)
	assert.Equal(t, LayoutExpanded, c.Layout(40).Mode)

	assert.True(t, c.Resolve(ticket, tinu.Succeeded(readyPayload())), "the original request is still live")
	assert.Equal(t, Ready, c.Phase())
}

func TestKeyboardLastWriteWinsAcrossClose(t *testing.T) {
	c := New()
	c.SetKeyboardVisible(true)
	c.SetKeyboardVisible(false)
	c.SetKeyboardVisible(true)
	assert.True(t, c.State().KeyboardVisible)
	c.Close()
	assert.True(t, c.State().KeyboardVisible)
	assert.Equal(t, Closed, c.Phase())
}
