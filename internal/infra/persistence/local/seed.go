package local

import (
	"time"

	"starfund/internal/domain/entity"
)

// Seed identities for the offline demo. Passwords are hashed at load time;
// the plaintext values here are demo credentials, not secrets.
type seedUser struct {
	user     entity.User
	password string
}

func seedUsers() []seedUser {
	created := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	return []seedUser{
		{
			user: entity.User{
				ID: 1, Email: "admin@test.com", Name: "Admin User",
				Role: entity.RoleAdmin, Status: entity.UserActive, CreatedAt: created,
			},
			password: "admin@123",
		},
		{
			user: entity.User{
				ID: 2, Email: "cva@test.com", Name: "CVA Member",
				Role: entity.RoleCVA, Status: entity.UserActive, CreatedAt: created,
			},
			password: "cva123",
		},
		{
			user: entity.User{
				ID: 3, Email: "investor@test.com", Name: "Nhà Đầu Tư",
				Role: entity.RoleInvestor, Status: entity.UserActive, CreatedAt: created,
			},
			password: "123456",
		},
		{
			user: entity.User{
				ID: 4, Email: "startup@test.com", Name: "Founder",
				Role: entity.RoleStartup, Company: "Startup ABC",
				Status: entity.UserActive, CreatedAt: created,
			},
			password: "123456",
		},
	}
}

func seedProjects() []entity.Project {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	approved := created.Add(48 * time.Hour)

	return []entity.Project{
		{
			ID:              1,
			Title:           "EcoCharge",
			Description:     "Trạm sạc xe điện năng lượng mặt trời cho đô thị",
			FullDescription: "EcoCharge xây dựng mạng lưới trạm sạc xe điện chạy hoàn toàn bằng năng lượng mặt trời, bắt đầu từ các bãi đỗ xe trung tâm TP.HCM.",
			Category:        "CleanTech",
			TargetAmount:    500_000_000,
			CurrentAmount:   320_000_000,
			InvestorCount:   48,
			DaysLeft:        21,
			StartupName:     "EcoCharge JSC",
			FounderID:       4,
			FounderName:     "Founder",
			FounderEmail:    "startup@test.com",
			Status:          entity.ProjectApproved,
			Image:           "https://images.starfund.vn/projects/ecocharge.jpg",
			Tags:            []string{"năng lượng", "xe điện"},
			CreatedAt:       created,
			ApprovedAt:      &approved,
		},
		{
			ID:              2,
			Title:           "FarmLink",
			Description:     "Nền tảng kết nối nông hộ với chuỗi bán lẻ",
			FullDescription: "FarmLink số hoá chuỗi cung ứng nông sản, cho phép nông hộ bán thẳng cho siêu thị và nhà hàng mà không qua thương lái.",
			Category:        "AgriTech",
			TargetAmount:    300_000_000,
			CurrentAmount:   120_500_000,
			InvestorCount:   23,
			DaysLeft:        35,
			StartupName:     "FarmLink Việt Nam",
			FounderID:       4,
			FounderName:     "Founder",
			FounderEmail:    "startup@test.com",
			Status:          entity.ProjectApproved,
			Image:           "https://images.starfund.vn/projects/farmlink.jpg",
			Tags:            []string{"nông nghiệp", "chuỗi cung ứng"},
			Milestones: []entity.Milestone{
				{Title: "MVP", Description: "Ra mắt ứng dụng cho 100 nông hộ", Amount: 100_000_000, Completed: true},
				{Title: "Mở rộng", Description: "Phủ 5 tỉnh miền Tây", Amount: 200_000_000},
			},
			CreatedAt:  created.Add(24 * time.Hour),
			ApprovedAt: &approved,
		},
		{
			ID:              3,
			Title:           "MedBox",
			Description:     "Tủ thuốc thông minh quản lý đơn thuốc gia đình",
			FullDescription: "MedBox nhắc lịch uống thuốc, cảnh báo tương tác thuốc và kết nối dược sĩ trực tuyến cho người cao tuổi.",
			Category:        "HealthTech",
			TargetAmount:    200_000_000,
			CurrentAmount:   0,
			InvestorCount:   0,
			DaysLeft:        60,
			StartupName:     "MedBox Health",
			FounderID:       4,
			FounderName:     "Founder",
			FounderEmail:    "startup@test.com",
			Status:          entity.ProjectPending,
			Image:           "https://images.starfund.vn/projects/medbox.jpg",
			Tags:            []string{"y tế", "IoT"},
			CreatedAt:       created.Add(72 * time.Hour),
		},
	}
}

func maxID[T any](items []T, id func(T) int64) int64 {
	var max int64
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}

	return max
}
