// Package nav defines the in-memory view selector state.
package nav

// Page identifies a view.
type Page string

const (
	PageDashboard    Page = "dashboard"
	PageTickets      Page = "tickets"
	PageTicketDetail Page = "ticketDetail"
	PageAdmin        Page = "admin"

	// Unauthenticated views.
	PageLogin  Page = "login"
	PageSignup Page = "signup"
)

// Well-known parameter keys.
const (
	ParamID              = "id"
	ParamShowCreateModal = "showCreateModal"
)

// AuthenticatedPages returns the pages reachable with a resolved identity.
func AuthenticatedPages() []Page {
	return []Page{PageDashboard, PageTickets, PageTicketDetail, PageAdmin}
}

// IsAuthenticatedPage reports whether p belongs to the authenticated layout.
func IsAuthenticatedPage(p Page) bool {
	switch p {
	case PageDashboard, PageTickets, PageTicketDetail, PageAdmin:
		return true
	default:
		return false
	}
}

// IsAuthPage reports whether p is one of the login/signup views.
func IsAuthPage(p Page) bool {
	return p == PageLogin || p == PageSignup
}

// Params carries view parameters.
type Params map[string]any

// Bool returns the boolean stored under key, false when missing or of another type.
func (p Params) Bool(key string) bool {
	v, ok := p[key].(bool)
	return ok && v
}

// String returns the string stored under key, "" when missing or of another type.
func (p Params) String(key string) string {
	v, _ := p[key].(string)
	return v
}

// Clone returns a shallow copy; nil becomes an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// State is the current view selection.
type State struct {
	Page   Page
	Params Params
}

// Default is the state the authenticated layout starts from.
func Default() State {
	return State{Page: PageDashboard, Params: Params{}}
}
