package assistant

import (
	"context"
	"fmt"
	"strings"
)

// Rule maps a keyword pattern to a canned handler. Rules are evaluated in
// order; the first match wins.
type Rule struct {
	Name    string
	Match   func(question string) bool
	Respond func(ctx context.Context, s *Service, question, language string) (string, error)
}

func containsAny(q string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

func defaultRules() []Rule {
	return []Rule{
		{
			// Respond scans the live registry for an instrument name inside
			// the question and yields nothing otherwise, so Match is open
			// and an empty response falls through to the next rule.
			Name:    "equipment_info",
			Match:   func(q string) bool { return true },
			Respond: respondEquipmentInfo,
		},
		{
			Name: "department_inventory",
			Match: func(q string) bool {
				return (containsAny(q, "khoa") && containsAny(q, "thiết bị", "máy")) ||
					(containsAny(q, "department") && containsAny(q, "equipment", "instrument"))
			},
			Respond: respondDepartmentInventory,
		},
		{
			Name: "booking_help",
			Match: func(q string) bool {
				return containsAny(q, "đặt lịch", "booking", "book ", "mượn")
			},
			Respond: respondBookingHelp,
		},
		{
			Name: "statistics",
			Match: func(q string) bool {
				return containsAny(q, "thống kê", "báo cáo", "statistic", "report")
			},
			Respond: respondStatistics,
		},
	}
}

func respondDepartmentInventory(ctx context.Context, s *Service, _, language string) (string, error) {
	items, err := s.equipment.List(ctx, "")
	if err != nil {
		return "", err
	}

	byDept := map[string][]string{}
	order := []string{}
	for _, e := range items {
		if _, seen := byDept[e.Department]; !seen {
			order = append(order, e.Department)
		}
		byDept[e.Department] = append(byDept[e.Department],
			fmt.Sprintf("- %s, %s (%d/%d %s)", e.Name, e.Room, e.Available, e.Quantity, tr(language, "available_word")))
	}

	var b strings.Builder
	b.WriteString(tr(language, "inventory_header"))
	for _, dept := range order {
		fmt.Fprintf(&b, "\n\n%s:\n%s", dept, strings.Join(byDept[dept], "\n"))
	}
	return b.String(), nil
}

func respondEquipmentInfo(ctx context.Context, s *Service, question, language string) (string, error) {
	items, err := s.equipment.List(ctx, "")
	if err != nil {
		return "", err
	}
	for _, e := range items {
		if strings.Contains(question, strings.ToLower(e.Name)) {
			return fmt.Sprintf(
				"%s\n\n%s: %s\n%s: %d/%d %s\n%s: %s",
				e.Name,
				tr(language, "location"), e.Room,
				tr(language, "status"), e.Available, e.Quantity, tr(language, "available_word"),
				tr(language, "department"), e.Department,
			), nil
		}
	}
	return "", nil
}

func respondBookingHelp(ctx context.Context, s *Service, _, language string) (string, error) {
	st, err := s.stats.Stats(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"%s\n\n- %s: %d\n- %s: %d\n- %s: %d\n\n%s",
		tr(language, "booking_header"),
		tr(language, "total_bookings"), st.TotalBookings,
		tr(language, "pending"), st.PendingBookings,
		tr(language, "approved"), st.ApprovedBookings,
		tr(language, "booking_steps"),
	), nil
}

func respondStatistics(ctx context.Context, s *Service, _, language string) (string, error) {
	st, err := s.stats.Stats(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"%s\n\n- %s: %d\n- %s: %d\n- %s: %d\n- %s: %d\n- %s: %d/%d\n- %s: %d",
		tr(language, "stats_header"),
		tr(language, "total_bookings"), st.TotalBookings,
		tr(language, "pending"), st.PendingBookings,
		tr(language, "approved"), st.ApprovedBookings,
		tr(language, "rejected"), st.RejectedBookings,
		tr(language, "available_equipment"), st.AvailableEquipment, st.AvailableEquipment+st.BusyEquipment,
		tr(language, "active_users"), st.ActiveUsers,
	), nil
}

var messages = map[string]map[string]string{
	"en": {
		"available_word":      "available",
		"inventory_header":    "Equipment by department:",
		"location":            "Location",
		"status":              "Status",
		"department":          "Department",
		"booking_header":      "Current booking information:",
		"total_bookings":      "Total bookings",
		"pending":             "Pending approval",
		"approved":            "Approved",
		"rejected":            "Rejected",
		"available_equipment": "Available equipment",
		"active_users":        "Active users",
		"stats_header":        "System statistics:",
		"booking_steps":       "How to book:\n1. Choose a department and equipment\n2. Pick a date and time window\n3. Describe your purpose\n4. Submit and wait for admin approval",
		"fallback":            "Sorry, I cannot answer this question.",
	},
	"vi": {
		"available_word":      "có sẵn",
		"inventory_header":    "Danh sách thiết bị theo khoa:",
		"location":            "Vị trí",
		"status":              "Trạng thái",
		"department":          "Khoa",
		"booking_header":      "Thông tin đặt lịch hiện tại:",
		"total_bookings":      "Tổng số booking",
		"pending":             "Đang chờ duyệt",
		"approved":            "Đã được duyệt",
		"rejected":            "Từ chối",
		"available_equipment": "Thiết bị có sẵn",
		"active_users":        "User hoạt động",
		"stats_header":        "Thống kê hệ thống:",
		"booking_steps":       "Hướng dẫn đặt lịch:\n1. Chọn khoa và thiết bị\n2. Chọn ngày và giờ sử dụng\n3. Mô tả mục đích sử dụng\n4. Gửi yêu cầu và chờ admin duyệt",
		"fallback":            "Xin lỗi, tôi không thể trả lời câu hỏi này.",
	},
}

func tr(language, key string) string {
	msgs, ok := messages[language]
	if !ok {
		msgs = messages["en"]
	}
	return msgs[key]
}
