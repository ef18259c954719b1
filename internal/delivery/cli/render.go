package cli

import (
	"context"
	"fmt"

	"starfund/internal/domain/entity"
	"starfund/internal/navigator"
	"starfund/internal/util"
)

// render draws the page the navigator currently points at. Rendering is the
// only place list data is fetched, so the error slots shown here always match
// the last fetch.
func (c *cli) render(ctx context.Context) {
	state := c.params.Navigator.Current()
	c.printHeader(state.CurrentPage)

	switch state.CurrentPage {
	case navigator.PageHome, navigator.PageExplore:
		c.renderProjectList(ctx, c.params.Projects.ApprovedProjects)
	case navigator.PageLogin:
		fmt.Fprintln(c.out, "Đăng nhập bằng: login <email> <mật khẩu>")
	case navigator.PageRegister:
		fmt.Fprintln(c.out, "Đăng ký bằng: register <email> <mật khẩu> <investor|startup> <tên>")
	case navigator.PageProjectDetail, navigator.PageEditProject:
		c.renderProjectDetail(state.SelectedProject)
	case navigator.PageReviewDetail:
		c.renderProjectDetail(state.SelectedProject)
		fmt.Fprintln(c.out, "Thẩm định bằng: approve [nhận xét] hoặc reject <lý do>")
	case navigator.PagePayment:
		c.renderPayment(state.SelectedProject)
	case navigator.PageBlog:
		c.renderBlogList()
	case navigator.PageBlogDetail:
		c.renderBlogDetail(state.SelectedBlog)
	case navigator.PageInvestorDashboard, navigator.PageInvestmentHistory:
		c.renderInvestorDashboard(ctx)
	case navigator.PageStartupDashboard, navigator.PageMyProjects:
		c.renderStartupDashboard(ctx)
	case navigator.PageCVADashboard, navigator.PageReviewProjects:
		c.renderProjectList(ctx, c.params.Projects.PendingProjects)
	case navigator.PageAdminDashboard:
		c.renderAdminDashboard(ctx)
	case navigator.PageUserManagement:
		c.renderUsers(ctx)
	case navigator.PageProjectManagement:
		c.renderProjectList(ctx, c.params.Projects.ApprovedProjects)
	case navigator.PageTransactionManagement:
		c.renderTransactions(ctx)
	case navigator.PageFAQ:
		fmt.Fprintln(c.out, "Câu hỏi thường gặp về đầu tư và gọi vốn trên StarFund.")
	case navigator.PageAbout:
		fmt.Fprintln(c.out, "StarFund kết nối nhà đầu tư với các startup Việt Nam.")
	case navigator.PageContact:
		fmt.Fprintln(c.out, "Liên hệ: support@starfund.vn")
	case navigator.PageCreateProject:
		fmt.Fprintln(c.out, "Tạo dự án mới qua giao diện web của StarFund.")
	}
}

func (c *cli) printHeader(page navigator.Page) {
	who := "khách"
	if user := c.params.Session.Current(); user != nil {
		who = fmt.Sprintf("%s (%s)", user.Name, user.Role)
	}
	fmt.Fprintf(c.out, "\n== StarFund · %s · %s ==\n", page, who)
}

func (c *cli) renderProjectList(ctx context.Context, fetch func(context.Context) ([]entity.Project, error)) {
	projects, err := fetch(ctx)
	if err != nil {
		// The cached snapshot keeps the list on screen; the slot carries
		// the message.
		projects = c.params.Projects.CachedProjects()
		fmt.Fprintf(c.out, "Lỗi tải dữ liệu: %s\n", c.params.Projects.LastError())
	}
	c.printProjects(projects)
}

func (c *cli) printProjects(projects []entity.Project) {
	c.lastProjects = projects
	if len(projects) == 0 {
		fmt.Fprintln(c.out, "Chưa có dự án nào.")

		return
	}
	for i, p := range projects {
		fmt.Fprintf(c.out, "%2d. [%s] %s — %s, %d nhà đầu tư, còn %d ngày\n",
			i+1, p.Status, p.Title, util.FormatProgress(p.CurrentAmount, p.TargetAmount), p.InvestorCount, p.DaysLeft)
	}
	fmt.Fprintln(c.out, "Mở chi tiết bằng: open <n>")
}

func (c *cli) renderProjectDetail(project *entity.Project) {
	if project == nil {
		fmt.Fprintln(c.out, "Chưa chọn dự án.")

		return
	}
	fmt.Fprintf(c.out, "%s (%s)\n", project.Title, project.Category)
	fmt.Fprintf(c.out, "Startup: %s · Sáng lập: %s\n", project.StartupName, project.FounderName)
	fmt.Fprintf(c.out, "Đã gọi %s từ %d nhà đầu tư, còn %d ngày\n",
		util.FormatProgress(project.CurrentAmount, project.TargetAmount), project.InvestorCount, project.DaysLeft)
	fmt.Fprintln(c.out, project.FullDescription)
	for _, m := range project.Milestones {
		mark := " "
		if m.Completed {
			mark = "x"
		}
		fmt.Fprintf(c.out, "  [%s] %s — %s\n", mark, m.Title, util.FormatVND(m.Amount))
	}
	if project.ReviewFeedback != "" {
		fmt.Fprintf(c.out, "Nhận xét thẩm định: %s\n", project.ReviewFeedback)
	}
	if project.Status.Investable() {
		fmt.Fprintln(c.out, "Đầu tư bằng: invest <số tiền>")
	}
}

func (c *cli) renderPayment(project *entity.Project) {
	if project == nil {
		fmt.Fprintln(c.out, "Chưa chọn dự án.")

		return
	}
	fmt.Fprintf(c.out, "Thanh toán khoản đầu tư vào %q qua VNPay.\n", project.Title)
	fmt.Fprintln(c.out, "Hiện mã QR bằng: pay")
}

func (c *cli) renderBlogList() {
	for i, post := range blogPosts {
		fmt.Fprintf(c.out, "%2d. %s — %s (%s)\n", i+1, post.Title, post.Author, post.Category)
	}
	fmt.Fprintln(c.out, "Đọc bài bằng: open <n>")
}

func (c *cli) renderBlogDetail(post *entity.Blog) {
	if post == nil {
		fmt.Fprintln(c.out, "Chưa chọn bài viết.")

		return
	}
	fmt.Fprintf(c.out, "%s\n%s · %s\n\n%s\n", post.Title, post.Author, post.PublishedAt.Format("02/01/2006"), post.Content)
}

func (c *cli) renderInvestorDashboard(ctx context.Context) {
	if stats, err := c.statsForRole(ctx); err == nil && stats != nil {
		fmt.Fprint(c.out, stats)
	}

	investments, err := c.params.Investments.MyInvestments(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Lỗi tải dữ liệu: %s\n", c.params.Investments.LastError())

		return
	}
	c.lastInvestments = investments
	for i, inv := range investments {
		fmt.Fprintf(c.out, "%2d. %s — %s (%s)\n", i+1, inv.ProjectTitle, util.FormatVND(inv.Amount), inv.Status)
	}
	if len(investments) == 0 {
		fmt.Fprintln(c.out, "Bạn chưa có khoản đầu tư nào.")
	}
}

func (c *cli) renderStartupDashboard(ctx context.Context) {
	user := c.params.Session.Current()
	if user == nil {
		fmt.Fprintln(c.out, "Cần đăng nhập.")

		return
	}
	if stats, err := c.statsForRole(ctx); err == nil && stats != nil {
		fmt.Fprint(c.out, stats)
	}

	projects, err := c.params.Projects.ProjectsByFounder(ctx, user.ID)
	if err != nil {
		fmt.Fprintf(c.out, "Lỗi tải dữ liệu: %s\n", c.params.Projects.LastError())

		return
	}
	c.printProjects(projects)
}

func (c *cli) renderAdminDashboard(ctx context.Context) {
	stats, err := c.params.Statistics.Overall(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Lỗi tải dữ liệu: %s\n", c.params.Statistics.LastError())

		return
	}
	fmt.Fprintf(c.out, "Dự án: %d (chờ duyệt %d, đã duyệt %d, từ chối %d)\n",
		stats.TotalProjects, stats.PendingProjects, stats.ApprovedProjects, stats.RejectedProjects)
	fmt.Fprintf(c.out, "Nhà đầu tư: %d · Startup: %d · Tổng vốn: %s\n",
		stats.TotalInvestors, stats.TotalStartups, util.FormatVND(stats.TotalFunding))
}

// statsForRole returns the dashboard summary text for the signed-in role, or
// nil when the role has none.
func (c *cli) statsForRole(ctx context.Context) (fmt.Stringer, error) {
	user := c.params.Session.Current()
	if user == nil {
		return nil, nil
	}

	switch user.Role {
	case entity.RoleInvestor:
		stats, err := c.params.Statistics.Investor(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		return investorSummary{stats}, nil
	case entity.RoleStartup:
		stats, err := c.params.Statistics.Startup(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		return startupSummary{stats}, nil
	default:
		return nil, nil
	}
}

type investorSummary struct{ stats *entity.InvestorStatistics }

func (s investorSummary) String() string {
	return fmt.Sprintf("Đã đầu tư %s vào %d dự án (%d hoàn tất, %d đang chờ)\n",
		util.FormatVND(s.stats.TotalInvested), s.stats.ProjectsBacked, s.stats.CompletedInvestments, s.stats.PendingInvestments)
}

type startupSummary struct{ stats *entity.StartupStatistics }

func (s startupSummary) String() string {
	return fmt.Sprintf("Đã gọi %s từ %d nhà đầu tư qua %d dự án\n",
		util.FormatVND(s.stats.TotalRaised), s.stats.TotalInvestors, s.stats.TotalProjects)
}

func (c *cli) renderUsers(ctx context.Context) {
	users, err := c.params.Admin.Users(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Lỗi tải dữ liệu: %s\n", c.params.Admin.LastError())

		return
	}
	c.lastUsers = users
	for i, u := range users {
		fmt.Fprintf(c.out, "%2d. %s <%s> — %s, %s\n", i+1, u.Name, u.Email, u.Role, u.Status)
	}
	fmt.Fprintln(c.out, "Khóa/mở khóa tài khoản bằng: ban <n> / activate <n>")
}

func (c *cli) renderTransactions(ctx context.Context) {
	transactions, err := c.params.Admin.Transactions(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Lỗi tải dữ liệu: %s\n", c.params.Admin.LastError())

		return
	}
	for i, tx := range transactions {
		fmt.Fprintf(c.out, "%2d. #%d %s — %s (%s, %s)\n", i+1, tx.ID, tx.Type, util.FormatVND(tx.Amount), tx.PaymentMethod, tx.Status)
	}
	if len(transactions) == 0 {
		fmt.Fprintln(c.out, "Chưa có giao dịch nào.")
	}
}
