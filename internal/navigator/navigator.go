// Package navigator is the client's view-state machine: one current page
// plus the contextual entity that page renders. All transitions go through
// Navigate and the auth hooks; nothing else writes the state.
package navigator

import (
	"log/slog"
	"sync"

	"starfund/internal/domain/entity"
	"starfund/internal/session"
)

// State is a snapshot of the navigation state.
type State struct {
	CurrentPage     Page
	SelectedProject *entity.Project
	SelectedBlog    *entity.Blog
}

// Navigator owns the navigation state. It starts at home and never
// terminates; there is no history stack.
type Navigator struct {
	mu      sync.Mutex
	session *session.Store
	logger  *slog.Logger
	state   State
}

// New creates the navigator at the home page.
func New(sess *session.Store, logger *slog.Logger) *Navigator {
	return &Navigator{
		session: sess,
		logger:  logger,
		state:   State{CurrentPage: PageHome},
	}
}

// Navigate moves to the target page, attaching data to the context slot the
// page expects. Pages with no slot leave both slots untouched, as does a nil
// data. Unknown pages fall back to home.
func (n *Navigator) Navigate(page Page, data any) {
	if !page.IsValid() {
		n.logger.Warn("unknown page, falling back to home", slog.String("page", string(page)))
		page = PageHome
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.state.CurrentPage = page
	if data == nil {
		return
	}

	switch pageSlots[page] {
	case slotProject:
		if project, ok := data.(*entity.Project); ok {
			n.state.SelectedProject = project
		}
	case slotBlog:
		if blog, ok := data.(*entity.Blog); ok {
			n.state.SelectedBlog = blog
		}
	}
}

// loginRedirects routes each role to its landing page after login.
var loginRedirects = map[entity.Role]Page{
	entity.RoleInvestor: PageInvestorDashboard,
	entity.RoleStartup:  PageStartupDashboard,
	entity.RoleCVA:      PageCVADashboard,
	entity.RoleAdmin:    PageAdminDashboard,
}

// registerRedirects routes each self-registerable role after signup.
// Investors land on home so they can start browsing projects right away.
var registerRedirects = map[entity.Role]Page{
	entity.RoleInvestor: PageHome,
	entity.RoleStartup:  PageStartupDashboard,
}

// OnLogin performs the role-based redirect after a successful login.
func (n *Navigator) OnLogin(user *entity.User) {
	n.redirect(loginRedirects, user)
}

// OnRegister performs the role-based redirect after a successful signup.
func (n *Navigator) OnRegister(user *entity.User) {
	n.redirect(registerRedirects, user)
}

func (n *Navigator) redirect(table map[entity.Role]Page, user *entity.User) {
	page, ok := table[user.Role]
	if !ok {
		page = PageHome
	}
	n.Navigate(page, nil)
}

// Logout clears the session and forces navigation to home.
func (n *Navigator) Logout() error {
	err := n.session.Clear()
	n.Navigate(PageHome, nil)

	return err
}

// Current returns a snapshot of the navigation state.
func (n *Navigator) Current() State {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.state
}
