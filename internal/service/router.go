package service

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/nav"
)

var (
	// ErrSessionResolving is returned by Navigate while the identity is being resolved.
	ErrSessionResolving = errors.New("session is resolving")
	// ErrPageNotReachable is returned when the page does not belong to the current layout.
	ErrPageNotReachable = errors.New("page not reachable")
)

// ViewKind is the top-level layout that may render.
type ViewKind string

const (
	ViewLoading ViewKind = "loading"
	ViewAuth    ViewKind = "auth"
	ViewMain    ViewKind = "main"
)

// View describes what the presentation layer should render.
type View struct {
	Kind ViewKind
	// AuthPage is login or signup when Kind is ViewAuth.
	AuthPage nav.Page
	// State is the navigation state when Kind is ViewMain.
	State nav.State
}

// SessionSource is the part of the session controller the router observes.
type SessionSource interface {
	Snapshot() domainauth.Session
	Subscribe(fn func(domainauth.Session)) (unsubscribe func())
}

// Router is the in-memory view selector. It keeps no history: Navigate
// replaces the state outright.
//
// Page gating follows the session layout only. Role-based filtering is exposed
// through Offered and Permits for menus; Navigate does not enforce it.
type Router struct {
	session SessionSource
	stop    func()

	mu        sync.Mutex
	state     nav.State
	authPage  nav.Page
	lastState domainauth.State
	identity  *domainauth.User

	obs observers[View]
}

// NewRouter builds a router bound to the session and starts tracking it.
func NewRouter(session SessionSource) *Router {
	r := &Router{
		session:  session,
		state:    nav.Default(),
		authPage: nav.PageLogin,
	}
	r.stop = session.Subscribe(r.onSession)
	r.onSession(domainauth.Session{})
	return r
}

// Close stops following session changes.
func (r *Router) Close() {
	if r.stop != nil {
		r.stop()
	}
}

// onSession re-reads the session rather than trusting the published snapshot.
// Snapshots are delivered outside the session lock and may arrive out of order.
func (r *Router) onSession(domainauth.Session) {
	r.mu.Lock()
	s := r.session.Snapshot()
	next := s.State()
	changed := next != r.lastState
	if next == domainauth.StateUnauthenticated && r.lastState != domainauth.StateUnauthenticated {
		r.state = nav.Default()
		r.authPage = nav.PageLogin
	}
	r.lastState = next
	r.identity = s.Identity
	view := r.viewLocked()
	r.mu.Unlock()

	if changed {
		r.obs.notify(view)
	}
}

// Navigate switches to page with params. While unauthenticated only the login
// and signup pages are reachable; while authenticated only the main layout pages.
func (r *Router) Navigate(page nav.Page, params nav.Params) error {
	r.mu.Lock()
	switch r.lastState {
	case domainauth.StateResolving:
		r.mu.Unlock()
		return ErrSessionResolving
	case domainauth.StateUnauthenticated:
		if !nav.IsAuthPage(page) {
			r.mu.Unlock()
			return fmt.Errorf("%w: %q while signed out", ErrPageNotReachable, page)
		}
		r.authPage = page
	default:
		if !nav.IsAuthenticatedPage(page) {
			r.mu.Unlock()
			return fmt.Errorf("%w: %q while signed in", ErrPageNotReachable, page)
		}
		r.state = nav.State{Page: page, Params: params.Clone()}
	}
	view := r.viewLocked()
	r.mu.Unlock()

	r.obs.notify(view)
	return nil
}

// State returns a copy of the navigation state of the main layout.
func (r *Router) State() nav.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return nav.State{Page: r.state.Page, Params: r.state.Params.Clone()}
}

// View reports which layout may render right now.
func (r *Router) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewLocked()
}

func (r *Router) viewLocked() View {
	switch r.lastState {
	case domainauth.StateResolving:
		return View{Kind: ViewLoading}
	case domainauth.StateUnauthenticated:
		return View{Kind: ViewAuth, AuthPage: r.authPage}
	default:
		return View{Kind: ViewMain, State: nav.State{Page: r.state.Page, Params: r.state.Params.Clone()}}
	}
}

// Offered lists the pages menus should offer to the current identity.
func (r *Router) Offered() []nav.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.lastState {
	case domainauth.StateResolving:
		return nil
	case domainauth.StateUnauthenticated:
		return []nav.Page{nav.PageLogin, nav.PageSignup}
	}
	pages := []nav.Page{nav.PageDashboard, nav.PageTickets, nav.PageTicketDetail}
	if r.identity != nil && r.identity.IsAdmin() {
		pages = append(pages, nav.PageAdmin)
	}
	return pages
}

// Permits reports whether page is among Offered.
func (r *Router) Permits(page nav.Page) bool {
	return slices.Contains(r.Offered(), page)
}

// Subscribe registers fn to receive the view after every change.
func (r *Router) Subscribe(fn func(View)) (unsubscribe func()) {
	return r.obs.add(fn)
}
