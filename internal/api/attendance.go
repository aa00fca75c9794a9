package api

import (
	"context"
	"net/url"

	"github.com/activehq/activehq-go/internal/domain/model"
)

// AttendanceService marks and reports member check-ins.
type AttendanceService struct {
	client *Client
}

// CheckIn marks a member as present.
func (s *AttendanceService) CheckIn(ctx context.Context, memberID string) (*model.Attendance, error) {
	var att model.Attendance
	if err := s.client.post(ctx, "/attendance/check-in", model.CheckInRequest{MemberID: memberID}, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// CheckOut closes a member's open check-in.
func (s *AttendanceService) CheckOut(ctx context.Context, memberID string) (*model.Attendance, error) {
	var att model.Attendance
	if err := s.client.post(ctx, "/attendance/check-out/"+url.PathEscape(memberID), nil, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// List returns a filtered, paginated attendance listing.
func (s *AttendanceService) List(ctx context.Context, q model.AttendanceListQuery) (*model.AttendanceListResponse, error) {
	query := url.Values{}
	setString(query, "target_date", q.TargetDate)
	setString(query, "member_id", q.MemberID)
	setInt(query, "page", q.Page)
	setInt(query, "page_size", q.PageSize)

	var resp model.AttendanceListResponse
	if err := s.client.get(ctx, "/attendance", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TodaySummary returns today's check-in counts.
func (s *AttendanceService) TodaySummary(ctx context.Context) (*model.DailyAttendanceSummary, error) {
	var summary model.DailyAttendanceSummary
	if err := s.client.get(ctx, "/attendance/today", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// DailySummary returns check-in counts for a specific date.
func (s *AttendanceService) DailySummary(ctx context.Context, date string) (*model.DailyAttendanceSummary, error) {
	query := url.Values{}
	setString(query, "target_date", date)

	var summary model.DailyAttendanceSummary
	if err := s.client.get(ctx, "/attendance/daily-summary", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CurrentlyIn returns members with an open check-in right now.
func (s *AttendanceService) CurrentlyIn(ctx context.Context) ([]model.Attendance, error) {
	var items []model.Attendance
	if err := s.client.get(ctx, "/attendance/currently-in", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ForMember returns a member's attendance history, optionally bounded by dates.
func (s *AttendanceService) ForMember(ctx context.Context, memberID, fromDate, toDate string) ([]model.Attendance, error) {
	query := url.Values{}
	setString(query, "from_date", fromDate)
	setString(query, "to_date", toDate)

	var items []model.Attendance
	if err := s.client.get(ctx, "/attendance/member/"+url.PathEscape(memberID), query, &items); err != nil {
		return nil, err
	}
	return items, nil
}
