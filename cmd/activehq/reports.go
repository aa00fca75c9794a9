package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/util"
)

func reportCommands() map[string]command {
	return map[string]command{
		"dashboard": {
			name:        "dashboard",
			description: "Show the dashboard headline numbers",
			run:         runDashboard,
		},
		"collection-report": {
			name:        "collection-report",
			description: "Show a collection report for a date range",
			run:         runCollectionReport,
		},
		"expiring-report": {
			name:        "expiring-report",
			description: "Report memberships expiring within a window",
			run:         runExpiringReport,
		},
		"dues-report": {
			name:        "dues-report",
			description: "Report members carrying outstanding dues",
			run:         runDuesReport,
		},
	}
}

type dashboardData struct {
	Stats       *model.DashboardStats `json:"stats"`
	Memberships *model.MembershipStats `json:"memberships"`
}

func runDashboard(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("dashboard")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		data, fetchErr := fetchDashboard(ctx, client)
		if fetchErr != nil {
			return fetchErr
		}

		if output.wantsJSON() {
			return emitJSON(data, output)
		}
		return printDashboard(data)
	})
}

// fetchDashboard pulls the headline stats and membership breakdown in
// parallel; both are needed for every render.
func fetchDashboard(ctx context.Context, client *api.Client) (dashboardData, error) {
	var data dashboardData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := client.Reports.Dashboard(gctx)
		if err != nil {
			return fmt.Errorf("fetch dashboard stats: %w", err)
		}
		data.Stats = stats
		return nil
	})
	g.Go(func() error {
		memberships, err := client.Reports.Memberships(gctx)
		if err != nil {
			return fmt.Errorf("fetch membership stats: %w", err)
		}
		data.Memberships = memberships
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboardData{}, err
	}
	return data, nil
}

func printDashboard(data dashboardData) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Metric\tValue"); err != nil {
		return fmt.Errorf("write dashboard header: %w", err)
	}
	if err := writef(w, "Total Members\t%d\n", data.Stats.TotalMembers); err != nil {
		return fmt.Errorf("write total members: %w", err)
	}
	if err := writef(w, "Active Members\t%d\n", data.Stats.ActiveMembers); err != nil {
		return fmt.Errorf("write active members: %w", err)
	}
	if err := writef(w, "Expiring Soon\t%d\n", data.Stats.ExpiringSoon); err != nil {
		return fmt.Errorf("write expiring soon: %w", err)
	}
	if err := writef(w, "Expired\t%d\n", data.Stats.ExpiredMembers); err != nil {
		return fmt.Errorf("write expired: %w", err)
	}
	if err := writef(w, "Today's Check-ins\t%d\n", data.Stats.TodayCheckIns); err != nil {
		return fmt.Errorf("write check-ins: %w", err)
	}
	if err := writef(w, "Today's Collection\t%s\n", util.FormatMoney(data.Stats.TodayCollection)); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	if err := writef(w, "Members With Dues\t%d\n", data.Stats.MembersWithDues); err != nil {
		return fmt.Errorf("write dues count: %w", err)
	}
	if err := writef(w, "Total Dues\t%s\n", util.FormatMoney(data.Stats.TotalDues)); err != nil {
		return fmt.Errorf("write total dues: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush dashboard table: %w", err)
	}

	if data.Memberships == nil {
		return nil
	}
	return writef(os.Stdout,
		"\nMemberships: %d active, %d paused, %d expired (%d expiring this week, %d this month)\n",
		data.Memberships.TotalActive,
		data.Memberships.TotalPaused,
		data.Memberships.TotalExpired,
		data.Memberships.ExpiringThisWeek,
		data.Memberships.ExpiringThisMonth,
	)
}

type collectionReportOptions struct {
	From   string
	To     string
	Period string
	Output outputOptions
}

func parseCollectionReportFlags(args []string) (collectionReportOptions, error) {
	fs := newFlagSet("collection-report")

	var opts collectionReportOptions
	fs.StringVar(&opts.From, "from", "", "Start date (YYYY-MM-DD)")
	fs.StringVar(&opts.To, "to", "", "End date (YYYY-MM-DD)")
	fs.StringVar(&opts.Period, "period", "", "Shortcut period: today, week, or month")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return collectionReportOptions{}, err
	}

	opts.Period = strings.ToLower(strings.TrimSpace(opts.Period))
	hasRange := opts.From != "" || opts.To != ""
	if opts.Period != "" && hasRange {
		return collectionReportOptions{}, errors.New("--period cannot be combined with --from/--to")
	}
	if opts.Period == "" && (opts.From == "" || opts.To == "") {
		return collectionReportOptions{}, errors.New("pass --period or both --from and --to")
	}
	switch opts.Period {
	case "", "today", "week", "month":
	default:
		return collectionReportOptions{}, fmt.Errorf("invalid period %q", opts.Period)
	}
	return opts, nil
}

func runCollectionReport(cmdCtx *commandContext, args []string) error {
	opts, err := parseCollectionReportFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		report, reportErr := fetchCollectionReport(ctx, client, opts)
		if reportErr != nil {
			return reportErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(report, opts.Output)
		}
		return printCollectionReport(report)
	})
}

func fetchCollectionReport(ctx context.Context, client *api.Client, opts collectionReportOptions) (*model.CollectionReport, error) {
	switch opts.Period {
	case "today":
		return client.Reports.CollectionToday(ctx)
	case "week":
		return client.Reports.CollectionThisWeek(ctx)
	case "month":
		return client.Reports.CollectionThisMonth(ctx)
	default:
		return client.Reports.Collection(ctx, opts.From, opts.To)
	}
}

func printCollectionReport(report *model.CollectionReport) error {
	if err := writef(os.Stdout, "Collection %s to %s: %s across %d transactions\n",
		report.FromDate, report.ToDate,
		util.FormatMoney(report.TotalAmount), report.TotalTransactions); err != nil {
		return fmt.Errorf("print collection summary: %w", err)
	}

	if len(report.ByMode) > 0 {
		modes := make([]string, 0, len(report.ByMode))
		for mode := range report.ByMode {
			modes = append(modes, mode)
		}
		sort.Strings(modes)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, mode := range modes {
			if err := writef(w, "%s\t%s\n", mode, util.FormatMoney(report.ByMode[mode])); err != nil {
				return fmt.Errorf("write mode row: %w", err)
			}
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush mode table: %w", err)
		}
	}

	if len(report.DailyBreakdown) == 0 {
		return nil
	}
	if err := writeln(os.Stdout); err != nil {
		return fmt.Errorf("print breakdown spacer: %w", err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Date\tAmount\tPayments"); err != nil {
		return fmt.Errorf("write breakdown header: %w", err)
	}
	for _, day := range report.DailyBreakdown {
		if err := writef(w, "%s\t%s\t%d\n", day.Date, util.FormatMoney(day.Amount), day.Count); err != nil {
			return fmt.Errorf("write breakdown row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush breakdown table: %w", err)
	}
	return nil
}

func runExpiringReport(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("expiring-report")
	days := fs.Int("days", 7, "Window in days")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *days < 1 {
		return errors.New("--days must be at least 1")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		rows, reportErr := client.Reports.ExpiringMembers(ctx, *days)
		if reportErr != nil {
			return reportErr
		}

		if output.wantsJSON() {
			return emitJSON(rows, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "Member\tPhone\tPlan\tEnds\tDays Left\tDue"); headerErr != nil {
			return fmt.Errorf("write expiring report header: %w", headerErr)
		}
		for _, row := range rows {
			if rowErr := writef(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
				row.MemberName, row.MemberPhone, row.PlanName,
				row.EndDate, row.DaysUntilExpiry, util.FormatMoney(row.AmountDue)); rowErr != nil {
				return fmt.Errorf("write expiring report row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush expiring report table: %w", flushErr)
		}
		return nil
	})
}

func runDuesReport(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("dues-report")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		rows, reportErr := client.Reports.MembersWithDues(ctx)
		if reportErr != nil {
			return reportErr
		}

		if output.wantsJSON() {
			return emitJSON(rows, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "Member\tPhone\tDue\tMembership Ends"); headerErr != nil {
			return fmt.Errorf("write dues report header: %w", headerErr)
		}
		var total float64
		for _, row := range rows {
			total += row.TotalDue
			if rowErr := writef(w, "%s\t%s\t%s\t%s\n",
				row.MemberName, row.MemberPhone,
				util.FormatMoney(row.TotalDue), util.FormatOptional(row.MembershipEnd)); rowErr != nil {
				return fmt.Errorf("write dues report row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush dues report table: %w", flushErr)
		}
		return writef(os.Stdout, "\nTotal outstanding: %s\n", util.FormatMoney(total))
	})
}
