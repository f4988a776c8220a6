package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/ticket"
	"github.com/target/ticketdesk/internal/domain/timestamp"
)

type ctxUserKey struct{}

// FakeAPI is an in-process stand-in for the ticket service. It issues opaque
// bearer tokens and applies the same visibility and authorization rules as the
// real service closely enough for client tests.
type FakeAPI struct {
	srv *httptest.Server

	mu        sync.Mutex
	users     map[string]domainauth.User
	passwords map[string]string // email -> password
	tokens    map[string]string // token -> user id
	tickets   []ticket.Ticket
	requests  []string
	rerunAI   int
	nextID    int
}

// NewFakeAPI starts a fake server that is closed when the test ends.
func NewFakeAPI(t interface {
	TestingTB
	Cleanup(func())
}) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		users:     make(map[string]domainauth.User),
		passwords: make(map[string]string),
		tokens:    make(map[string]string),
	}
	f.srv = httptest.NewServer(f.routes())
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the server base URL.
func (f *FakeAPI) URL() string { return f.srv.URL }

// AddUser registers u with password and returns a valid token for it.
func (f *FakeAPI) AddUser(u domainauth.User, password string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	f.passwords[strings.ToLower(u.Email)] = password
	return f.issueLocked(u.ID)
}

// AddTicket stores t.
func (f *FakeAPI) AddTicket(t ticket.Ticket) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickets = append(f.tickets, t)
}

// Ticket returns the stored ticket with id.
func (f *FakeAPI) Ticket(id string) (ticket.Ticket, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return ticket.Ticket{}, false
}

// User returns the stored user with id.
func (f *FakeAPI) User(id string) (domainauth.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	return u, ok
}

// Revoke invalidates token.
func (f *FakeAPI) Revoke(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
}

// RevokeAll invalidates every issued token.
func (f *FakeAPI) RevokeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.tokens)
}

// Requests returns "METHOD /path" for every request served, in order.
func (f *FakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// RerunAICalls returns how many times AI re-analysis was triggered.
func (f *FakeAPI) RerunAICalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rerunAI
}

func (f *FakeAPI) issueLocked(userID string) string {
	f.nextID++
	token := fmt.Sprintf("fake-token-%s-%d", userID, f.nextID)
	f.tokens[token] = userID
	return token
}

func (f *FakeAPI) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(f.record)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", f.login)
		r.Post("/signup", f.signup)
		r.With(f.authenticate).Get("/me", f.me)
	})
	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(f.authenticate)
		r.Get("/", f.listTickets)
		r.Post("/", f.createTicket)
		r.Get("/stats/dashboard", f.stats)
		r.Get("/{id}", f.getTicket)
		r.Patch("/{id}/status", f.updateStatus)
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(f.authenticate, f.adminOnly)
		r.Get("/users", f.listUsers)
		r.Patch("/users/{id}", f.updateUser)
		r.Post("/rerun-ai", f.rerun)
	})
	return r
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		f.mu.Lock()
		userID, known := f.tokens[token]
		user, exists := f.users[userID]
		f.mu.Unlock()
		if !ok || !known || !exists {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r, user)))
	})
}

func (f *FakeAPI) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userFrom(r).Role != domainauth.RoleAdmin {
			writeDetail(w, http.StatusForbidden, "Not enough permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	pw, ok := f.passwords[strings.ToLower(in.Email)]
	if !ok || pw != in.Password {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	for id, u := range f.users {
		if strings.EqualFold(u.Email, in.Email) {
			writeJSON(w, http.StatusOK, map[string]string{"access_token": f.issueLocked(id), "token_type": "bearer"})
			return
		}
	}
	writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
}

func (f *FakeAPI) signup(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FullName string `json:"full_name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.passwords[strings.ToLower(in.Email)]; exists {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	f.nextID++
	u := domainauth.User{
		ID:        fmt.Sprintf("user-%d", f.nextID),
		Email:     in.Email,
		Username:  in.Username,
		FullName:  in.FullName,
		Role:      domainauth.RoleUser,
		Skills:    []string{},
		IsActive:  true,
		CreatedAt: timestamp.New(TestTime()),
	}
	f.users[u.ID] = u
	f.passwords[strings.ToLower(in.Email)] = in.Password
	writeJSON(w, http.StatusOK, map[string]string{"access_token": f.issueLocked(u.ID), "token_type": "bearer"})
}

func (f *FakeAPI) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFrom(r))
}

func visible(u domainauth.User, t ticket.Ticket) bool {
	switch u.Role {
	case domainauth.RoleAdmin:
		return true
	case domainauth.RoleModerator:
		return t.IsAssignedTo(u.ID)
	default:
		return t.CreatedBy == u.ID
	}
}

func (f *FakeAPI) listTickets(w http.ResponseWriter, r *http.Request) {
	u := userFrom(r)
	f.mu.Lock()
	out := []ticket.Ticket{}
	for _, t := range f.tickets {
		if visible(u, t) {
			out = append(out, t)
		}
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) createTicket(w http.ResponseWriter, r *http.Request) {
	var in ticket.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	f.mu.Lock()
	f.nextID++
	t := ticket.Ticket{
		ID:             fmt.Sprintf("ticket-%d", f.nextID),
		Title:          in.Title,
		Description:    in.Description,
		Status:         ticket.StatusOpen,
		Priority:       ticket.PriorityMedium,
		CreatedBy:      userFrom(r).ID,
		RequiredSkills: []string{},
		CreatedAt:      timestamp.New(TestTime()),
	}
	f.tickets = append(f.tickets, t)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, t)
}

func (f *FakeAPI) getTicket(w http.ResponseWriter, r *http.Request) {
	t, ok := f.Ticket(chi.URLParam(r, "id"))
	if !ok {
		writeDetail(w, http.StatusNotFound, "Ticket not found")
		return
	}
	if !visible(userFrom(r), t) {
		writeDetail(w, http.StatusForbidden, "Not authorized to view this ticket")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (f *FakeAPI) updateStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status ticket.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || !ticket.IsValidStatus(in.Status) {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid status")
		return
	}
	u := userFrom(r)
	if u.Role == domainauth.RoleUser {
		writeDetail(w, http.StatusForbidden, "Not authorized to update ticket status")
		return
	}
	id := chi.URLParam(r, "id")

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tickets {
		if t.ID != id {
			continue
		}
		if !ticket.CanTransition(u, t) {
			writeDetail(w, http.StatusForbidden, "Not authorized to update this ticket")
			return
		}
		f.tickets[i].Status = in.Status
		writeJSON(w, http.StatusOK, map[string]string{"message": "Ticket status updated successfully"})
		return
	}
	writeDetail(w, http.StatusNotFound, "Ticket not found")
}

func (f *FakeAPI) stats(w http.ResponseWriter, r *http.Request) {
	if userFrom(r).Role != domainauth.RoleAdmin {
		writeDetail(w, http.StatusForbidden, "Not authorized to view statistics")
		return
	}
	f.mu.Lock()
	var s ticket.DashboardStats
	for _, t := range f.tickets {
		s.Total++
		switch t.Status {
		case ticket.StatusOpen:
			s.Open++
		case ticket.StatusResolved:
			s.Resolved++
		}
		if t.Priority == ticket.PriorityUrgent {
			s.Urgent++
		}
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, s)
}

func (f *FakeAPI) listUsers(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	out := make([]domainauth.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) updateUser(w http.ResponseWriter, r *http.Request) {
	var in domainauth.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || !in.Role.Valid() {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	id := chi.URLParam(r, "id")
	f.mu.Lock()
	u, ok := f.users[id]
	if ok {
		u.Role = in.Role
		u.Skills = in.Skills
		f.users[id] = u
	}
	f.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (f *FakeAPI) rerun(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	f.rerunAI++
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "AI re-analysis started in background"})
}

// utcSuffix matches the zone of an encoded UTC timestamp.
var utcSuffix = regexp.MustCompile(`("\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?)Z"`)

// writeJSON encodes v the way the service does: timestamps are naive UTC
// datetimes without a zone offset.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(utcSuffix.ReplaceAll(body, []byte(`$1"`)))
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func withUser(r *http.Request, u domainauth.User) context.Context {
	return context.WithValue(r.Context(), ctxUserKey{}, u)
}

func userFrom(r *http.Request) domainauth.User {
	u, _ := r.Context().Value(ctxUserKey{}).(domainauth.User)
	return u
}
