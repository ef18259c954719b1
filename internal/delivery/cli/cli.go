// Package cli is the terminal front of the client: it renders the page the
// navigator selects and turns typed commands into usecase calls.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"starfund/internal/delivery"
	"starfund/internal/domain/entity"
	"starfund/internal/domain/service"
	"starfund/internal/navigator"
	"starfund/internal/session"
	"starfund/internal/usecase"

	"go.uber.org/fx"
)

// CLIParams holds dependencies for the terminal frontend, injected by Fx.
type CLIParams struct {
	fx.In

	Session     *session.Store
	Navigator   *navigator.Navigator
	Auth        usecase.AuthUsecase
	Projects    usecase.ProjectUsecase
	Investments usecase.InvestmentUsecase
	Admin       usecase.AdminUsecase
	Statistics  usecase.StatisticsUsecase
	Payment     usecase.PaymentUsecase
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

type cli struct {
	params CLIParams
	out    io.Writer

	// lastList maps on-screen indexes to the entities of the last rendered
	// list, so commands like "open 2" resolve against what the user saw.
	lastProjects    []entity.Project
	lastInvestments []entity.Investment
	lastUsers       []entity.User
}

// NewCLI builds the terminal frontend.
func NewCLI(params CLIParams) delivery.Delivery {
	return &cli{params: params, out: os.Stdout}
}

// Serve runs the read-render loop until the user quits or ctx is done.
func (c *cli) Serve(ctx context.Context) error {
	if user, err := c.params.Auth.Refresh(ctx); err == nil && user != nil {
		fmt.Fprintf(c.out, "Chào mừng trở lại, %s!\n", user.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		c.render(ctx)
		fmt.Fprint(c.out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := c.dispatch(ctx, line); err != nil {
			fmt.Fprintf(c.out, "Lỗi: %s\n", err.Error())
		}
	}
}

// dispatch handles one typed command.
func (c *cli) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "go":
		if len(args) != 1 {
			return fmt.Errorf("cú pháp: go <trang>")
		}
		c.params.Navigator.Navigate(navigator.Page(args[0]), nil)

		return nil
	case "login":
		return c.login(ctx, args)
	case "register":
		return c.register(ctx, args)
	case "logout":
		return c.params.Navigator.Logout()
	case "open":
		return c.open(args)
	case "search":
		return c.search(ctx, args)
	case "invest":
		return c.invest(ctx, args)
	case "pay":
		return c.pay(ctx)
	case "approve":
		return c.review(ctx, args, true)
	case "reject":
		return c.review(ctx, args, false)
	case "ban", "activate":
		return c.moderate(ctx, cmd, args)
	case "help":
		c.printHelp()

		return nil
	default:
		return fmt.Errorf("lệnh không hợp lệ: %q (gõ help)", cmd)
	}
}

func (c *cli) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("cú pháp: login <email> <mật khẩu>")
	}

	user, err := c.params.Auth.Login(ctx, usecase.LoginInput{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Đăng nhập thành công: %s (%s)\n", user.Name, user.Role)
	c.params.Navigator.OnLogin(user)

	return nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("cú pháp: register <email> <mật khẩu> <vai trò> <tên...>")
	}

	user, err := c.params.Auth.Register(ctx, usecase.RegisterInput{
		Email:    args[0],
		Password: args[1],
		Role:     entity.Role(args[2]),
		Name:     strings.Join(args[3:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Đăng ký thành công: %s (%s)\n", user.Name, user.Role)
	c.params.Navigator.OnRegister(user)

	return nil
}

// open navigates to the detail page of a listed item, attaching it as the
// navigation context.
func (c *cli) open(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("cú pháp: open <số thứ tự>")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return fmt.Errorf("số thứ tự không hợp lệ")
	}

	if c.params.Navigator.Current().CurrentPage == navigator.PageBlog {
		if idx > len(blogPosts) {
			return fmt.Errorf("số thứ tự không hợp lệ")
		}
		post := blogPosts[idx-1]
		c.params.Navigator.Navigate(navigator.PageBlogDetail, &post)

		return nil
	}

	if idx > len(c.lastProjects) {
		return fmt.Errorf("số thứ tự không hợp lệ")
	}
	project := c.lastProjects[idx-1]

	target := navigator.PageProjectDetail
	switch c.params.Navigator.Current().CurrentPage {
	case navigator.PageReviewProjects, navigator.PageCVADashboard:
		target = navigator.PageReviewDetail
	case navigator.PageMyProjects, navigator.PageStartupDashboard:
		target = navigator.PageEditProject
	}
	c.params.Navigator.Navigate(target, &project)

	return nil
}

func (c *cli) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("cú pháp: search <từ khóa>")
	}

	projects, err := c.params.Projects.SearchProjects(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.printProjects(projects)

	return nil
}

func (c *cli) invest(ctx context.Context, args []string) error {
	state := c.params.Navigator.Current()
	if state.SelectedProject == nil {
		return fmt.Errorf("chưa chọn dự án (dùng open <n> trước)")
	}
	if len(args) != 1 {
		return fmt.Errorf("cú pháp: invest <số tiền>")
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("số tiền không hợp lệ")
	}

	inv, err := c.params.Investments.Invest(ctx, usecase.InvestInput{
		ProjectID:     state.SelectedProject.ID,
		Amount:        amount,
		PaymentMethod: "vnpay",
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Đã tạo khoản đầu tư #%d, chuyển đến trang thanh toán.\n", inv.ID)
	c.params.Navigator.Navigate(navigator.PagePayment, state.SelectedProject)
	c.lastInvestments = []entity.Investment{*inv}

	return nil
}

// pay renders the VNPay QR code for the investment created on this screen.
func (c *cli) pay(ctx context.Context) error {
	if len(c.lastInvestments) == 0 {
		return fmt.Errorf("không có khoản đầu tư đang chờ thanh toán")
	}
	inv := c.lastInvestments[0]

	payURL, err := c.params.Payment.StartPayment(ctx, inv.ID, inv.Amount)
	if err != nil {
		return err
	}

	qr, err := c.params.QRCode.PaymentText(payURL)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Quét mã QR bằng ứng dụng VNPay để thanh toán:")
	fmt.Fprintln(c.out, qr)
	fmt.Fprintln(c.out, payURL)

	return nil
}

func (c *cli) review(ctx context.Context, args []string, approve bool) error {
	state := c.params.Navigator.Current()
	if state.SelectedProject == nil {
		return fmt.Errorf("chưa chọn dự án (dùng open <n> trước)")
	}
	feedback := strings.Join(args, " ")
	if !approve && feedback == "" {
		return fmt.Errorf("từ chối dự án cần nêu lý do")
	}

	var err error
	if approve {
		_, err = c.params.Projects.ApproveProject(ctx, state.SelectedProject.ID, feedback)
	} else {
		_, err = c.params.Projects.RejectProject(ctx, state.SelectedProject.ID, feedback)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Đã ghi nhận quyết định thẩm định.")
	c.params.Navigator.Navigate(navigator.PageReviewProjects, nil)

	return nil
}

func (c *cli) moderate(ctx context.Context, cmd string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("cú pháp: %s <số thứ tự>", cmd)
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(c.lastUsers) {
		return fmt.Errorf("số thứ tự không hợp lệ")
	}

	status := entity.UserActive
	if cmd == "ban" {
		status = entity.UserBanned
	}
	user, err := c.params.Admin.UpdateUserStatus(ctx, c.lastUsers[idx-1].ID, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Tài khoản %s hiện ở trạng thái %s.\n", user.Email, user.Status)

	return nil
}

func (c *cli) printHelp() {
	fmt.Fprintln(c.out, `Các lệnh:
  go <trang>                 chuyển trang (home, explore, blog, login, ...)
  login <email> <mật khẩu>   đăng nhập
  register <email> <mk> <vai trò> <tên>
  logout                     đăng xuất
  open <n>                   mở mục thứ n của danh sách
  search <từ khóa>           tìm dự án
  invest <số tiền>           đầu tư vào dự án đang mở
  pay                        hiện mã QR VNPay cho khoản đầu tư vừa tạo
  approve [nhận xét]         duyệt dự án đang mở (CVA)
  reject <lý do>             từ chối dự án đang mở (CVA)
  ban <n> / activate <n>     khóa hoặc mở khóa tài khoản (admin)
  quit                       thoát`)
}
