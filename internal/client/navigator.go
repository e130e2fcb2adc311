package client

import (
	"sync"

	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/navigation"
)

// StackNavigator is the navigation container of the line-mode client. It
// maintains the screen stack the intents operate on: a push intent stacks the
// target on top of the current screen, a reset intent discards the whole
// stack and starts over from the target.
type StackNavigator struct {
	logger *logger.Logger

	mu    sync.Mutex
	stack []navigation.Route
}

// NewStackNavigator creates a navigator whose stack holds only start.
func NewStackNavigator(start navigation.Route, log *logger.Logger) *StackNavigator {
	return &StackNavigator{
		logger: log,
		stack:  []navigation.Route{start},
	}
}

// Dispatch implements [navigation.Navigator].
func (n *StackNavigator) Dispatch(intent navigation.Intent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch intent.Kind {
	case navigation.KindReset:
		n.stack = []navigation.Route{intent.Route}
	default:
		n.stack = append(n.stack, intent.Route)
	}

	n.logger.Debug().
		Str("kind", string(intent.Kind)).
		Str("route", string(intent.Route)).
		Msg("navigation intent applied")
}

// Current returns the route on top of the stack.
func (n *StackNavigator) Current() navigation.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Back pops the top route and returns the new current one. Popping the last
// remaining route is a no-op.
func (n *StackNavigator) Back() navigation.Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack.
func (n *StackNavigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}
