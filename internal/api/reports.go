package api

import (
	"context"
	"net/url"

	"github.com/activehq/activehq-go/internal/domain/model"
)

// ReportService serves the aggregate views behind the dashboard.
type ReportService struct {
	client *Client
}

// Dashboard returns the headline stats.
func (s *ReportService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := s.client.get(ctx, "/reports/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Memberships returns membership lifecycle counts.
func (s *ReportService) Memberships(ctx context.Context) (*model.MembershipStats, error) {
	var stats model.MembershipStats
	if err := s.client.get(ctx, "/reports/memberships", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Collection returns the collection report for an explicit date range.
func (s *ReportService) Collection(ctx context.Context, fromDate, toDate string) (*model.CollectionReport, error) {
	query := url.Values{}
	setString(query, "from_date", fromDate)
	setString(query, "to_date", toDate)
	return s.collection(ctx, "/reports/collection", query)
}

// CollectionToday returns today's collection report.
func (s *ReportService) CollectionToday(ctx context.Context) (*model.CollectionReport, error) {
	return s.collection(ctx, "/reports/collection/today", nil)
}

// CollectionThisWeek returns this week's collection report.
func (s *ReportService) CollectionThisWeek(ctx context.Context) (*model.CollectionReport, error) {
	return s.collection(ctx, "/reports/collection/this-week", nil)
}

// CollectionThisMonth returns this month's collection report.
func (s *ReportService) CollectionThisMonth(ctx context.Context) (*model.CollectionReport, error) {
	return s.collection(ctx, "/reports/collection/this-month", nil)
}

func (s *ReportService) collection(ctx context.Context, path string, query url.Values) (*model.CollectionReport, error) {
	var report model.CollectionReport
	if err := s.client.get(ctx, path, query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ExpiringMembers lists members expiring within the given days.
func (s *ReportService) ExpiringMembers(ctx context.Context, days int) ([]model.ExpiringMemberInfo, error) {
	query := url.Values{}
	setInt(query, "days", days)

	var members []model.ExpiringMemberInfo
	if err := s.client.get(ctx, "/reports/expiring-members", query, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// MembersWithDues lists members carrying outstanding balances.
func (s *ReportService) MembersWithDues(ctx context.Context) ([]model.DuesMemberInfo, error) {
	var members []model.DuesMemberInfo
	if err := s.client.get(ctx, "/reports/members-with-dues", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}
