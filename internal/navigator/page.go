package navigator

// Page identifies one screen of the client. The set is fixed; anything
// outside it falls back to PageHome.
type Page string

const (
	PageHome          Page = "home"
	PageLogin         Page = "login"
	PageRegister      Page = "register"
	PageExplore       Page = "explore"
	PageProjectDetail Page = "project-detail"
	PageFAQ           Page = "faq"
	PageAbout         Page = "about"
	PageContact       Page = "contact"
	PageBlog          Page = "blog"
	PageBlogDetail    Page = "blog-detail"

	PageInvestorDashboard Page = "investor-dashboard"
	PageInvestmentHistory Page = "investment-history"
	PagePayment           Page = "payment"

	PageStartupDashboard Page = "startup-dashboard"
	PageCreateProject    Page = "create-project"
	PageMyProjects       Page = "my-projects"
	PageEditProject      Page = "edit-project"

	PageCVADashboard   Page = "cva-dashboard"
	PageReviewProjects Page = "review-projects"
	PageReviewDetail   Page = "review-detail"

	PageAdminDashboard        Page = "admin-dashboard"
	PageUserManagement        Page = "user-management"
	PageProjectManagement     Page = "project-management"
	PageTransactionManagement Page = "transaction-management"
)

// contextSlot names the contextual entity a page consumes.
type contextSlot int

const (
	slotNone contextSlot = iota
	slotProject
	slotBlog
)

// pageSlots is the fixed association between pages and the context they
// expect. Pages absent from the table take no context.
var pageSlots = map[Page]contextSlot{
	PageProjectDetail: slotProject,
	PageReviewDetail:  slotProject,
	PageEditProject:   slotProject,
	PagePayment:       slotProject,
	PageBlogDetail:    slotBlog,
}

var knownPages = map[Page]struct{}{
	PageHome: {}, PageLogin: {}, PageRegister: {}, PageExplore: {},
	PageProjectDetail: {}, PageFAQ: {}, PageAbout: {}, PageContact: {},
	PageBlog: {}, PageBlogDetail: {},
	PageInvestorDashboard: {}, PageInvestmentHistory: {}, PagePayment: {},
	PageStartupDashboard: {}, PageCreateProject: {}, PageMyProjects: {}, PageEditProject: {},
	PageCVADashboard: {}, PageReviewProjects: {}, PageReviewDetail: {},
	PageAdminDashboard: {}, PageUserManagement: {}, PageProjectManagement: {}, PageTransactionManagement: {},
}

// IsValid reports whether p is a known page.
func (p Page) IsValid() bool {
	_, ok := knownPages[p]
	return ok
}
