package cli

import (
	"time"

	"starfund/internal/domain/entity"
)

// blogPosts is the editorial content shown on the blog pages. Posts are
// bundled with the client; there is no blog backend.
var blogPosts = []entity.Blog{
	{
		ID:          1,
		Title:       "Gọi vốn cộng đồng là gì?",
		Excerpt:     "Tổng quan về mô hình gọi vốn cộng đồng và cách StarFund kết nối startup với nhà đầu tư.",
		Content:     "Gọi vốn cộng đồng cho phép nhiều nhà đầu tư nhỏ cùng góp vốn vào một dự án. Trên StarFund, mỗi dự án đều được thẩm định bởi hội đồng CVA trước khi mở nhận đầu tư.",
		Author:      "StarFund Team",
		Category:    "Kiến thức",
		Tags:        []string{"gọi vốn", "cơ bản"},
		PublishedAt: time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          2,
		Title:       "5 tiêu chí thẩm định dự án của CVA",
		Excerpt:     "Hội đồng thẩm định đánh giá dự án dựa trên những tiêu chí nào?",
		Content:     "Đội ngũ sáng lập, quy mô thị trường, sản phẩm, kế hoạch tài chính và tính minh bạch là năm tiêu chí chính khi CVA xét duyệt một dự án trên nền tảng.",
		Author:      "Hội đồng CVA",
		Category:    "Thẩm định",
		Tags:        []string{"cva", "thẩm định"},
		PublishedAt: time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          3,
		Title:       "Thanh toán an toàn qua VNPay",
		Excerpt:     "Quy trình thanh toán khoản đầu tư qua cổng VNPay trên StarFund.",
		Content:     "Mỗi khoản đầu tư được tạo ở trạng thái chờ thanh toán. Sau khi quét mã QR và hoàn tất giao dịch trên VNPay, hệ thống xác minh chữ ký và ghi nhận khoản đầu tư.",
		Author:      "StarFund Team",
		Category:    "Hướng dẫn",
		Tags:        []string{"vnpay", "thanh toán"},
		PublishedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	},
}

func findBlog(id int64) *entity.Blog {
	for i := range blogPosts {
		if blogPosts[i].ID == id {
			return &blogPosts[i]
		}
	}

	return nil
}
