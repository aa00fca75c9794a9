package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/util"
)

func paymentCommands() map[string]command {
	return map[string]command{
		"list-payments": {
			name:        "list-payments",
			description: "List payments, optionally filtered by member, date, or mode",
			run:         runListPayments,
		},
		"add-payment": {
			name:        "add-payment",
			description: "Record a payment",
			run:         runAddPayment,
		},
		"daily-collection": {
			name:        "daily-collection",
			description: "Show one day's collection totals by payment mode",
			run:         runDailyCollection,
		},
	}
}

func runListPayments(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("list-payments")
	var q model.PaymentListQuery
	fs.StringVar(&q.MemberID, "member-id", "", "Filter by member")
	fs.StringVar(&q.FromDate, "from", "", "Start date (YYYY-MM-DD)")
	fs.StringVar(&q.ToDate, "to", "", "End date (YYYY-MM-DD)")
	fs.StringVar(&q.PaymentMode, "mode", "", "Filter by payment mode")
	fs.IntVar(&q.Page, "page", 1, "Page number")
	fs.IntVar(&q.PageSize, "page-size", 20, "Rows per page")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if q.PaymentMode != "" && !model.PaymentMode(q.PaymentMode).Valid() {
		return fmt.Errorf("invalid payment mode %q", q.PaymentMode)
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		resp, listErr := client.Payments.List(ctx, q)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(resp, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "ID\tMember\tAmount\tMode\tDate"); headerErr != nil {
			return fmt.Errorf("write payments header: %w", headerErr)
		}
		for _, p := range resp.Items {
			if rowErr := writef(w, "%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.MemberName, util.FormatMoney(p.Amount), p.PaymentMode, p.PaymentDate); rowErr != nil {
				return fmt.Errorf("write payment row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush payments table: %w", flushErr)
		}
		return writef(os.Stdout, "\nPage %d (%d payments, %s collected)\n",
			resp.Page, resp.Total, util.FormatMoney(resp.TotalAmount))
	})
}

type addPaymentOptions struct {
	Req    model.CreatePaymentRequest
	Output outputOptions
}

func parseAddPaymentFlags(args []string) (addPaymentOptions, error) {
	fs := newFlagSet("add-payment")

	var opts addPaymentOptions
	var membershipID, date, reference, notes, mode string
	tax := fs.Float64("tax", -1, "Tax amount")
	fs.StringVar(&opts.Req.MemberID, "member-id", "", "Member ID (required)")
	fs.StringVar(&membershipID, "membership-id", "", "Membership to credit the payment against")
	fs.Float64Var(&opts.Req.Amount, "amount", 0, "Amount in rupees (required)")
	fs.StringVar(&mode, "mode", string(model.PaymentCash), "Payment mode: cash, upi, card, bank_transfer, or other")
	fs.StringVar(&date, "date", "", "Payment date (YYYY-MM-DD, defaults to today server-side)")
	fs.StringVar(&reference, "reference", "", "Transaction reference number")
	fs.StringVar(&notes, "notes", "", "Free-form notes")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return addPaymentOptions{}, err
	}

	if strings.TrimSpace(opts.Req.MemberID) == "" {
		return addPaymentOptions{}, errors.New("--member-id is required")
	}
	if opts.Req.Amount <= 0 {
		return addPaymentOptions{}, errors.New("--amount must be greater than zero")
	}
	opts.Req.PaymentMode = model.PaymentMode(strings.ToLower(strings.TrimSpace(mode)))
	if !opts.Req.PaymentMode.Valid() {
		return addPaymentOptions{}, fmt.Errorf("invalid payment mode %q", mode)
	}
	opts.Req.MembershipID = stringPtrIfSet(membershipID)
	opts.Req.PaymentDate = stringPtrIfSet(date)
	opts.Req.ReferenceNumber = stringPtrIfSet(reference)
	opts.Req.Notes = stringPtrIfSet(notes)
	if *tax >= 0 {
		opts.Req.TaxAmount = tax
	}
	return opts, nil
}

func runAddPayment(cmdCtx *commandContext, args []string) error {
	opts, err := parseAddPaymentFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		payment, createErr := client.Payments.Create(ctx, opts.Req)
		if createErr != nil {
			return createErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(payment, opts.Output)
		}
		return writef(os.Stdout, "Recorded %s %s payment (%s)\n",
			util.FormatMoney(payment.TotalAmount), payment.PaymentMode, payment.ID)
	})
}

func runDailyCollection(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("daily-collection")
	date := fs.String("date", "", "Day to report (YYYY-MM-DD, defaults to today server-side)")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		summary, dailyErr := client.Payments.Daily(ctx, strings.TrimSpace(*date))
		if dailyErr != nil {
			return dailyErr
		}

		if output.wantsJSON() {
			return emitJSON(summary, output)
		}

		if headerErr := writef(os.Stdout, "Collection for %s: %s across %d payments\n",
			summary.Date, util.FormatMoney(summary.TotalAmount), summary.PaymentCount); headerErr != nil {
			return fmt.Errorf("print collection header: %w", headerErr)
		}
		if len(summary.ByMode) == 0 {
			return nil
		}

		modes := make([]string, 0, len(summary.ByMode))
		for mode := range summary.ByMode {
			modes = append(modes, mode)
		}
		sort.Strings(modes)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, mode := range modes {
			if rowErr := writef(w, "%s\t%s\n", mode, util.FormatMoney(summary.ByMode[mode])); rowErr != nil {
				return fmt.Errorf("write mode row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush collection table: %w", flushErr)
		}
		return nil
	})
}
