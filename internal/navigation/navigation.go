// Package navigation defines the intents the session service emits toward
// the navigation container. The container itself lives outside the core: it
// receives an [Intent] and performs the actual screen transition.
package navigation

//go:generate mockgen -source=navigation.go -destination=../mock/navigator_mock.go -package=mock

// Route names a navigable screen.
type Route string

const (
	// RouteLogin is the unauthenticated entry point of the app.
	RouteLogin Route = "Login"
	// RouteHome is the authenticated screen showing the expense list.
	RouteHome Route = "Home"
	// RouteRegister is the sign-up screen reachable from RouteLogin.
	RouteRegister Route = "Register"
)

// Kind distinguishes how a transition treats the existing screen stack.
type Kind string

const (
	// KindPush pushes the target route on top of the current stack; the
	// previous screen stays reachable via back-navigation.
	KindPush Kind = "push"
	// KindReset replaces the entire stack with the target route; prior
	// screens are discarded and cannot be reached via back-navigation.
	KindReset Kind = "reset"
)

// Intent is a single instruction for the navigation container.
type Intent struct {
	Kind  Kind
	Route Route
}

// GoTo builds a push intent for route.
func GoTo(route Route) Intent {
	return Intent{Kind: KindPush, Route: route}
}

// ResetTo builds a stack-replacing intent for route.
func ResetTo(route Route) Intent {
	return Intent{Kind: KindReset, Route: route}
}

// Navigator executes navigation intents. Implemented by the out-of-core
// navigation container; the session service only dispatches.
type Navigator interface {
	Dispatch(intent Intent)
}
