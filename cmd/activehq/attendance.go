package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/domain/model"
)

func attendanceCommands() map[string]command {
	return map[string]command{
		"check-in": {
			name:        "check-in",
			description: "Mark a member as checked in",
			run:         runCheckIn,
		},
		"check-out": {
			name:        "check-out",
			description: "Close a member's open check-in",
			run:         runCheckOut,
		},
		"list-attendance": {
			name:        "list-attendance",
			description: "List attendance records for a day or member",
			run:         runListAttendance,
		},
		"attendance-today": {
			name:        "attendance-today",
			description: "Show today's attendance summary",
			run:         runAttendanceToday,
		},
		"currently-in": {
			name:        "currently-in",
			description: "List members currently inside the gym",
			run:         runCurrentlyIn,
		},
	}
}

func runCheckIn(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("check-in")
	memberID := fs.String("member-id", "", "Member ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*memberID) == "" {
		return errors.New("--member-id is required")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		record, checkInErr := client.Attendance.CheckIn(ctx, *memberID)
		if checkInErr != nil {
			return checkInErr
		}

		name := *memberID
		if record.MemberName != nil {
			name = *record.MemberName
		}
		return writef(os.Stdout, "Checked in %s at %s\n", name, formatClock(record.CheckInTime))
	})
}

func runCheckOut(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("check-out")
	memberID := fs.String("member-id", "", "Member ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*memberID) == "" {
		return errors.New("--member-id is required")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		record, checkOutErr := client.Attendance.CheckOut(ctx, *memberID)
		if checkOutErr != nil {
			return checkOutErr
		}

		name := *memberID
		if record.MemberName != nil {
			name = *record.MemberName
		}
		out := "—"
		if record.CheckOutTime != nil {
			out = formatClock(*record.CheckOutTime)
		}
		return writef(os.Stdout, "Checked out %s at %s\n", name, out)
	})
}

func runListAttendance(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("list-attendance")
	var q model.AttendanceListQuery
	fs.StringVar(&q.TargetDate, "date", "", "Day to list (YYYY-MM-DD)")
	fs.StringVar(&q.MemberID, "member-id", "", "Filter by member")
	fs.IntVar(&q.Page, "page", 1, "Page number")
	fs.IntVar(&q.PageSize, "page-size", 20, "Rows per page")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		resp, listErr := client.Attendance.List(ctx, q)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(resp, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "Member\tIn\tOut"); headerErr != nil {
			return fmt.Errorf("write attendance header: %w", headerErr)
		}
		for _, a := range resp.Items {
			out := "—"
			if a.CheckOutTime != nil {
				out = formatClock(*a.CheckOutTime)
			}
			if rowErr := writef(w, "%s\t%s\t%s\n", a.MemberName, formatClock(a.CheckInTime), out); rowErr != nil {
				return fmt.Errorf("write attendance row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush attendance table: %w", flushErr)
		}
		return writef(os.Stdout, "\nPage %d (%d records)\n", resp.Page, resp.Total)
	})
}

func runAttendanceToday(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("attendance-today")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		summary, summaryErr := client.Attendance.TodaySummary(ctx)
		if summaryErr != nil {
			return summaryErr
		}

		if output.wantsJSON() {
			return emitJSON(summary, output)
		}
		return writef(os.Stdout, "%s: %d check-ins by %d members\n",
			summary.Date, summary.TotalCheckIns, summary.UniqueMembers)
	})
}

func runCurrentlyIn(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("currently-in")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		records, listErr := client.Attendance.CurrentlyIn(ctx)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(records, output)
		}

		if len(records) == 0 {
			return writeln(os.Stdout, "Nobody is checked in right now")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "Member\tSince"); headerErr != nil {
			return fmt.Errorf("write currently-in header: %w", headerErr)
		}
		for _, a := range records {
			name := a.MemberID
			if a.MemberName != nil {
				name = *a.MemberName
			}
			if rowErr := writef(w, "%s\t%s\n", name, formatClock(a.CheckInTime)); rowErr != nil {
				return fmt.Errorf("write currently-in row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush currently-in table: %w", flushErr)
		}
		return nil
	})
}

func formatClock(ts model.Timestamp) string {
	return ts.Local().Format(time.Kitchen)
}
