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

func memberCommands() map[string]command {
	return map[string]command{
		"list-members": {
			name:        "list-members",
			description: "List members, optionally filtered by search or status",
			run:         runListMembers,
		},
		"show-member": {
			name:        "show-member",
			description: "Show one member with their current membership",
			run:         runShowMember,
		},
		"add-member": {
			name:        "add-member",
			description: "Register a new member",
			run:         runAddMember,
		},
		"update-member": {
			name:        "update-member",
			description: "Update a member's profile",
			run:         runUpdateMember,
		},
		"deactivate-member": {
			name:        "deactivate-member",
			description: "Deactivate a member",
			run:         runDeactivateMember,
		},
		"reactivate-member": {
			name:        "reactivate-member",
			description: "Reactivate a deactivated member",
			run:         runReactivateMember,
		},
		"expiring-members": {
			name:        "expiring-members",
			description: "List members whose membership expires soon",
			run:         runExpiringMembers,
		},
		"dues-members": {
			name:        "dues-members",
			description: "List members with outstanding dues",
			run:         runDuesMembers,
		},
	}
}

type listMembersOptions struct {
	Query  model.MemberListQuery
	Output outputOptions
}

func parseListMembersFlags(args []string) (listMembersOptions, error) {
	fs := newFlagSet("list-members")

	var opts listMembersOptions
	fs.StringVar(&opts.Query.Query, "search", "", "Search by name, phone, or member code")
	fs.StringVar(&opts.Query.Status, "status", "", "Filter by membership status")
	fs.IntVar(&opts.Query.Page, "page", 1, "Page number")
	fs.IntVar(&opts.Query.PageSize, "page-size", 20, "Rows per page")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return listMembersOptions{}, err
	}
	if opts.Query.Page < 1 {
		return listMembersOptions{}, errors.New("--page must be at least 1")
	}
	return opts, nil
}

func runListMembers(cmdCtx *commandContext, args []string) error {
	opts, err := parseListMembersFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		resp, listErr := client.Members.List(ctx, opts.Query)
		if listErr != nil {
			return listErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(resp, opts.Output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "ID\tName\tPhone\tCode\tJoined\tActive"); headerErr != nil {
			return fmt.Errorf("write members header: %w", headerErr)
		}
		for _, m := range resp.Items {
			if rowErr := writef(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
				m.ID, m.Name, m.Phone, util.FormatOptional(m.MemberCode), m.JoinedDate, m.IsActive); rowErr != nil {
				return fmt.Errorf("write member row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush members table: %w", flushErr)
		}
		return writef(os.Stdout, "\nPage %d of %d (%d members)\n", resp.Page, resp.TotalPages, resp.Total)
	})
}

func runShowMember(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("show-member")
	id := fs.String("id", "", "Member ID (required)")
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

		member, getErr := client.Members.Get(ctx, *id)
		if getErr != nil {
			return getErr
		}

		if output.wantsJSON() {
			return emitJSON(member, output)
		}
		return printMemberDetail(member)
	})
}

func printMemberDetail(m *model.MemberWithMembership) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Name", m.Name},
		{"Phone", m.Phone},
		{"Email", util.FormatOptional(m.Email)},
		{"Code", util.FormatOptional(m.MemberCode)},
		{"Joined", m.JoinedDate},
		{"Active", fmt.Sprintf("%t", m.IsActive)},
	}
	if m.CurrentMembershipStatus != nil {
		rows = append(rows, struct {
			label string
			value string
		}{"Membership", m.CurrentMembershipStatus.String()})
	}
	if m.CurrentPlanName != nil {
		rows = append(rows, struct {
			label string
			value string
		}{"Plan", *m.CurrentPlanName})
	}
	if m.CurrentMembershipEnd != nil {
		rows = append(rows, struct {
			label string
			value string
		}{"Membership Ends", *m.CurrentMembershipEnd})
	}
	if m.AmountDue != nil && *m.AmountDue > 0 {
		rows = append(rows, struct {
			label string
			value string
		}{"Amount Due", util.FormatMoney(*m.AmountDue)})
	}
	for _, row := range rows {
		if err := writef(w, "%s\t%s\n", row.label, row.value); err != nil {
			return fmt.Errorf("write member row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush member table: %w", err)
	}
	return nil
}

type addMemberOptions struct {
	Req    model.CreateMemberRequest
	Gender string
	Output outputOptions
}

func parseAddMemberFlags(args []string) (addMemberOptions, error) {
	fs := newFlagSet("add-member")

	var opts addMemberOptions
	var email, altPhone, dob, address, ecName, ecPhone, joined, notes, code string
	fs.StringVar(&opts.Req.Name, "name", "", "Full name (required)")
	fs.StringVar(&opts.Req.Phone, "phone", "", "Phone number (required)")
	fs.StringVar(&email, "email", "", "Email address")
	fs.StringVar(&altPhone, "alt-phone", "", "Alternate phone")
	fs.StringVar(&opts.Gender, "gender", "", "Gender: male, female, or other")
	fs.StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	fs.StringVar(&address, "address", "", "Street address")
	fs.StringVar(&ecName, "emergency-name", "", "Emergency contact name")
	fs.StringVar(&ecPhone, "emergency-phone", "", "Emergency contact phone")
	fs.StringVar(&joined, "joined", "", "Joining date (YYYY-MM-DD, defaults to today server-side)")
	fs.StringVar(&notes, "notes", "", "Free-form notes")
	fs.StringVar(&code, "code", "", "Member code")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return addMemberOptions{}, err
	}

	if opts.Req.Name == "" || opts.Req.Phone == "" {
		return addMemberOptions{}, errors.New("--name and --phone are required")
	}
	if opts.Gender != "" {
		g := model.Gender(strings.ToLower(opts.Gender))
		if !g.Valid() {
			return addMemberOptions{}, fmt.Errorf("invalid gender %q", opts.Gender)
		}
		opts.Req.Gender = &g
	}
	opts.Req.Email = stringPtrIfSet(email)
	opts.Req.AlternatePhone = stringPtrIfSet(altPhone)
	opts.Req.DateOfBirth = stringPtrIfSet(dob)
	opts.Req.Address = stringPtrIfSet(address)
	opts.Req.EmergencyContactName = stringPtrIfSet(ecName)
	opts.Req.EmergencyContactPhone = stringPtrIfSet(ecPhone)
	opts.Req.JoinedDate = stringPtrIfSet(joined)
	opts.Req.Notes = stringPtrIfSet(notes)
	opts.Req.MemberCode = stringPtrIfSet(code)
	return opts, nil
}

func runAddMember(cmdCtx *commandContext, args []string) error {
	opts, err := parseAddMemberFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		member, createErr := client.Members.Create(ctx, opts.Req)
		if createErr != nil {
			return createErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(member, opts.Output)
		}
		return writef(os.Stdout, "Added member %s (%s)\n", member.Name, member.ID)
	})
}

type updateMemberOptions struct {
	ID     string
	Req    model.UpdateMemberRequest
	Output outputOptions
}

func parseUpdateMemberFlags(args []string) (updateMemberOptions, error) {
	fs := newFlagSet("update-member")

	var opts updateMemberOptions
	var name, email, phone, altPhone, gender, dob, address, ecName, ecPhone, notes, code string
	fs.StringVar(&opts.ID, "id", "", "Member ID (required)")
	fs.StringVar(&name, "name", "", "Full name")
	fs.StringVar(&email, "email", "", "Email address")
	fs.StringVar(&phone, "phone", "", "Phone number")
	fs.StringVar(&altPhone, "alt-phone", "", "Alternate phone")
	fs.StringVar(&gender, "gender", "", "Gender: male, female, or other")
	fs.StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	fs.StringVar(&address, "address", "", "Street address")
	fs.StringVar(&ecName, "emergency-name", "", "Emergency contact name")
	fs.StringVar(&ecPhone, "emergency-phone", "", "Emergency contact phone")
	fs.StringVar(&notes, "notes", "", "Free-form notes")
	fs.StringVar(&code, "code", "", "Member code")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return updateMemberOptions{}, err
	}
	if strings.TrimSpace(opts.ID) == "" {
		return updateMemberOptions{}, errors.New("--id is required")
	}

	if gender != "" {
		g := model.Gender(strings.ToLower(gender))
		if !g.Valid() {
			return updateMemberOptions{}, fmt.Errorf("invalid gender %q", gender)
		}
		opts.Req.Gender = &g
	}
	opts.Req.Name = stringPtrIfSet(name)
	opts.Req.Email = stringPtrIfSet(email)
	opts.Req.Phone = stringPtrIfSet(phone)
	opts.Req.AlternatePhone = stringPtrIfSet(altPhone)
	opts.Req.DateOfBirth = stringPtrIfSet(dob)
	opts.Req.Address = stringPtrIfSet(address)
	opts.Req.EmergencyContactName = stringPtrIfSet(ecName)
	opts.Req.EmergencyContactPhone = stringPtrIfSet(ecPhone)
	opts.Req.Notes = stringPtrIfSet(notes)
	opts.Req.MemberCode = stringPtrIfSet(code)
	return opts, nil
}

func runUpdateMember(cmdCtx *commandContext, args []string) error {
	opts, err := parseUpdateMemberFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		member, updateErr := client.Members.Update(ctx, opts.ID, opts.Req)
		if updateErr != nil {
			return updateErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(member, opts.Output)
		}
		return writef(os.Stdout, "Updated member %s (%s)\n", member.Name, member.ID)
	})
}

func runDeactivateMember(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("deactivate-member")
	id := fs.String("id", "", "Member ID (required)")
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
		if deleteErr := client.Members.Delete(ctx, *id); deleteErr != nil {
			return deleteErr
		}
		return writef(os.Stdout, "Deactivated member %s\n", *id)
	})
}

func runReactivateMember(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("reactivate-member")
	id := fs.String("id", "", "Member ID (required)")
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
		member, reactivateErr := client.Members.Reactivate(ctx, *id)
		if reactivateErr != nil {
			return reactivateErr
		}
		return writef(os.Stdout, "Reactivated member %s (%s)\n", member.Name, member.ID)
	})
}

func runExpiringMembers(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("expiring-members")
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

		members, listErr := client.Members.Expiring(ctx, *days)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(members, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "ID\tName\tPhone\tPlan\tEnds\tDue"); headerErr != nil {
			return fmt.Errorf("write expiring header: %w", headerErr)
		}
		for _, m := range members {
			due := "—"
			if m.AmountDue != nil && *m.AmountDue > 0 {
				due = util.FormatMoney(*m.AmountDue)
			}
			if rowErr := writef(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				m.ID, m.Name, m.Phone,
				util.FormatOptional(m.CurrentPlanName),
				util.FormatOptional(m.CurrentMembershipEnd),
				due); rowErr != nil {
				return fmt.Errorf("write expiring row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush expiring table: %w", flushErr)
		}
		return nil
	})
}

func runDuesMembers(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("dues-members")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		members, listErr := client.Members.WithDues(ctx)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(members, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "ID\tName\tPhone\tDue"); headerErr != nil {
			return fmt.Errorf("write dues header: %w", headerErr)
		}
		var total float64
		for _, m := range members {
			due := 0.0
			if m.AmountDue != nil {
				due = *m.AmountDue
			}
			total += due
			if rowErr := writef(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Phone, util.FormatMoney(due)); rowErr != nil {
				return fmt.Errorf("write dues row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush dues table: %w", flushErr)
		}
		return writef(os.Stdout, "\nTotal outstanding: %s\n", util.FormatMoney(total))
	})
}
