package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/util"
)

func membershipCommands() map[string]command {
	return map[string]command{
		"list-memberships": {
			name:        "list-memberships",
			description: "List membership periods, optionally filtered by status",
			run:         runListMemberships,
		},
		"show-membership": {
			name:        "show-membership",
			description: "Show one membership period",
			run:         runShowMembership,
		},
		"add-membership": {
			name:        "add-membership",
			description: "Start a membership period for a member",
			run:         runAddMembership,
		},
		"renew-membership": {
			name:        "renew-membership",
			description: "Renew a member's membership",
			run:         runRenewMembership,
		},
		"pause-membership": {
			name:        "pause-membership",
			description: "Pause an active membership",
			run:         makeMembershipTransition("pause-membership", "Paused", (*api.MembershipService).Pause),
		},
		"resume-membership": {
			name:        "resume-membership",
			description: "Resume a paused membership",
			run:         makeMembershipTransition("resume-membership", "Resumed", (*api.MembershipService).Resume),
		},
		"cancel-membership": {
			name:        "cancel-membership",
			description: "Cancel a membership",
			run:         makeMembershipTransition("cancel-membership", "Cancelled", (*api.MembershipService).Cancel),
		},
	}
}

func runListMemberships(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("list-memberships")
	var q model.MembershipListQuery
	fs.StringVar(&q.Status, "status", "", "Filter by status: active, expired, paused, cancelled")
	fs.IntVar(&q.Page, "page", 1, "Page number")
	fs.IntVar(&q.PageSize, "page-size", 20, "Rows per page")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if q.Status != "" && !model.MembershipStatus(q.Status).Valid() {
		return fmt.Errorf("invalid status %q", q.Status)
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		resp, listErr := client.Memberships.List(ctx, q)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(resp, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "ID\tMember\tPlan\tStart\tEnd\tStatus\tDue"); headerErr != nil {
			return fmt.Errorf("write memberships header: %w", headerErr)
		}
		for _, m := range resp.Items {
			if rowErr := writef(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				m.ID, m.MemberName, m.PlanName, m.StartDate, m.EndDate, m.Status, util.FormatMoney(m.AmountDue)); rowErr != nil {
				return fmt.Errorf("write membership row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush memberships table: %w", flushErr)
		}
		return writef(os.Stdout, "\nPage %d (%d memberships)\n", resp.Page, resp.Total)
	})
}

func runShowMembership(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("show-membership")
	id := fs.String("id", "", "Membership ID (required)")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" {
		return errors.New("--id is required")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		membership, getErr := client.Memberships.Get(ctx, *id)
		if getErr != nil {
			return getErr
		}

		if output.wantsJSON() {
			return emitJSON(membership, output)
		}
		return printMembership(membership)
	})
}

func printMembership(m *model.Membership) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Member", util.FormatOptional(m.MemberName)},
		{"Plan", util.FormatOptional(m.PlanName)},
		{"Period", m.StartDate + " to " + m.EndDate},
		{"Status", m.Status.String()},
		{"Total", util.FormatMoney(m.AmountTotal)},
		{"Paid", util.FormatMoney(m.AmountPaid)},
		{"Due", util.FormatMoney(m.AmountDue)},
	}
	for _, row := range rows {
		if err := writef(w, "%s\t%s\n", row.label, row.value); err != nil {
			return fmt.Errorf("write membership row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush membership table: %w", err)
	}
	return nil
}

type addMembershipOptions struct {
	Req    model.CreateMembershipRequest
	Output outputOptions
}

func parseAddMembershipFlags(args []string) (addMembershipOptions, error) {
	fs := newFlagSet("add-membership")

	var opts addMembershipOptions
	var start, notes string
	total := fs.Float64("total", -1, "Override the plan price")
	paid := fs.Float64("paid", -1, "Amount collected up front")
	fs.StringVar(&opts.Req.MemberID, "member-id", "", "Member ID (required)")
	fs.StringVar(&opts.Req.PlanID, "plan-id", "", "Plan ID (required)")
	fs.StringVar(&start, "start", "", "Start date (YYYY-MM-DD, defaults to today server-side)")
	fs.StringVar(&notes, "notes", "", "Free-form notes")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return addMembershipOptions{}, err
	}
	if opts.Req.MemberID == "" || opts.Req.PlanID == "" {
		return addMembershipOptions{}, errors.New("--member-id and --plan-id are required")
	}

	opts.Req.StartDate = stringPtrIfSet(start)
	opts.Req.Notes = stringPtrIfSet(notes)
	if *total >= 0 {
		opts.Req.AmountTotal = total
	}
	if *paid >= 0 {
		opts.Req.AmountPaid = paid
	}
	return opts, nil
}

func runAddMembership(cmdCtx *commandContext, args []string) error {
	opts, err := parseAddMembershipFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		membership, createErr := client.Memberships.Create(ctx, opts.Req)
		if createErr != nil {
			return createErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(membership, opts.Output)
		}
		return writef(os.Stdout, "Started membership %s until %s\n", membership.ID, membership.EndDate)
	})
}

type renewMembershipOptions struct {
	MemberID string
	Req      model.RenewMembershipRequest
	Output   outputOptions
}

func parseRenewMembershipFlags(args []string) (renewMembershipOptions, error) {
	fs := newFlagSet("renew-membership")

	var opts renewMembershipOptions
	var planID, start, notes string
	total := fs.Float64("total", -1, "Override the plan price")
	paid := fs.Float64("paid", -1, "Amount collected up front")
	fs.StringVar(&opts.MemberID, "member-id", "", "Member ID (required)")
	fs.StringVar(&planID, "plan-id", "", "Switch to a different plan")
	fs.StringVar(&start, "start", "", "Start date (YYYY-MM-DD, defaults to day after current period)")
	fs.StringVar(&notes, "notes", "", "Free-form notes")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return renewMembershipOptions{}, err
	}
	if strings.TrimSpace(opts.MemberID) == "" {
		return renewMembershipOptions{}, errors.New("--member-id is required")
	}

	opts.Req.PlanID = stringPtrIfSet(planID)
	opts.Req.StartDate = stringPtrIfSet(start)
	opts.Req.Notes = stringPtrIfSet(notes)
	if *total >= 0 {
		opts.Req.AmountTotal = total
	}
	if *paid >= 0 {
		opts.Req.AmountPaid = paid
	}
	return opts, nil
}

func runRenewMembership(cmdCtx *commandContext, args []string) error {
	opts, err := parseRenewMembershipFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		membership, renewErr := client.Memberships.Renew(ctx, opts.MemberID, opts.Req)
		if renewErr != nil {
			return renewErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(membership, opts.Output)
		}
		return writef(os.Stdout, "Renewed membership %s until %s\n", membership.ID, membership.EndDate)
	})
}

// makeMembershipTransition builds the run function shared by the pause,
// resume, and cancel commands.
func makeMembershipTransition(
	name, verb string,
	transition func(*api.MembershipService, context.Context, string) (*model.Membership, error),
) commandFn {
	return func(cmdCtx *commandContext, args []string) error {
		fs := newFlagSet(name)
		id := fs.String("id", "", "Membership ID (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if strings.TrimSpace(*id) == "" {
			return errors.New("--id is required")
		}

		return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
			if authErr := requireSignedIn(client); authErr != nil {
				return authErr
			}

			membership, transitionErr := transition(client.Memberships, ctx, *id)
			if transitionErr != nil {
				return transitionErr
			}
			return writef(os.Stdout, "%s membership %s (now %s)\n", verb, membership.ID, membership.Status)
		})
	}
}
