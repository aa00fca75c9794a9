package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/util"
)

func planCommands() map[string]command {
	return map[string]command{
		"list-plans": {
			name:        "list-plans",
			description: "List subscription plans",
			run:         runListPlans,
		},
		"add-plan": {
			name:        "add-plan",
			description: "Create a subscription plan",
			run:         runAddPlan,
		},
		"update-plan": {
			name:        "update-plan",
			description: "Update a subscription plan",
			run:         runUpdatePlan,
		},
		"delete-plan": {
			name:        "delete-plan",
			description: "Deactivate a subscription plan",
			run:         runDeletePlan,
		},
	}
}

func runListPlans(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("list-plans")
	all := fs.Bool("all", false, "Include inactive plans")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		plans, listErr := client.Plans.List(ctx, *all)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(plans, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if headerErr := writeln(w, "ID\tName\tDuration\tPrice\tActive"); headerErr != nil {
			return fmt.Errorf("write plans header: %w", headerErr)
		}
		for _, p := range plans {
			if rowErr := writef(w, "%s\t%s\t%s\t%s\t%t\n",
				p.ID, p.Name, util.FormatPlanDuration(p.DurationDays), util.FormatMoney(p.Price), p.IsActive); rowErr != nil {
				return fmt.Errorf("write plan row: %w", rowErr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush plans table: %w", flushErr)
		}
		return nil
	})
}

type addPlanOptions struct {
	Req    model.CreatePlanRequest
	Output outputOptions
}

func parseAddPlanFlags(args []string) (addPlanOptions, error) {
	fs := newFlagSet("add-plan")

	var opts addPlanOptions
	var description string
	fs.StringVar(&opts.Req.Name, "name", "", "Plan name (required)")
	fs.StringVar(&description, "description", "", "Plan description")
	fs.IntVar(&opts.Req.DurationDays, "days", 0, "Duration in days (required)")
	fs.Float64Var(&opts.Req.Price, "price", 0, "Price in rupees (required)")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return addPlanOptions{}, err
	}

	if opts.Req.Name == "" {
		return addPlanOptions{}, errors.New("--name is required")
	}
	if opts.Req.DurationDays < 1 {
		return addPlanOptions{}, errors.New("--days must be at least 1")
	}
	if opts.Req.Price < 0 {
		return addPlanOptions{}, errors.New("--price must not be negative")
	}
	opts.Req.Description = stringPtrIfSet(description)
	return opts, nil
}

func runAddPlan(cmdCtx *commandContext, args []string) error {
	opts, err := parseAddPlanFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		plan, createErr := client.Plans.Create(ctx, opts.Req)
		if createErr != nil {
			return createErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(plan, opts.Output)
		}
		return writef(os.Stdout, "Added plan %s: %s for %s (%s)\n",
			plan.Name, util.FormatPlanDuration(plan.DurationDays), util.FormatMoney(plan.Price), plan.ID)
	})
}

type updatePlanOptions struct {
	ID     string
	Req    model.UpdatePlanRequest
	Output outputOptions
}

func parseUpdatePlanFlags(args []string) (updatePlanOptions, error) {
	fs := newFlagSet("update-plan")

	var opts updatePlanOptions
	var name, description string
	days := fs.Int("days", -1, "Duration in days")
	price := fs.Float64("price", -1, "Price in rupees")
	active := fs.Bool("active", true, "Whether the plan is sellable")
	fs.StringVar(&opts.ID, "id", "", "Plan ID (required)")
	fs.StringVar(&name, "name", "", "Plan name")
	fs.StringVar(&description, "description", "", "Plan description")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return updatePlanOptions{}, err
	}
	if strings.TrimSpace(opts.ID) == "" {
		return updatePlanOptions{}, errors.New("--id is required")
	}

	opts.Req.Name = stringPtrIfSet(name)
	opts.Req.Description = stringPtrIfSet(description)
	if *days >= 0 {
		if *days < 1 {
			return updatePlanOptions{}, errors.New("--days must be at least 1")
		}
		opts.Req.DurationDays = days
	}
	if *price >= 0 {
		opts.Req.Price = price
	}
	// Only send is_active when the flag was set explicitly.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "active" {
			opts.Req.IsActive = active
		}
	})
	return opts, nil
}

func runUpdatePlan(cmdCtx *commandContext, args []string) error {
	opts, err := parseUpdatePlanFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		plan, updateErr := client.Plans.Update(ctx, opts.ID, opts.Req)
		if updateErr != nil {
			return updateErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(plan, opts.Output)
		}
		return writef(os.Stdout, "Updated plan %s (%s)\n", plan.Name, plan.ID)
	})
}

func runDeletePlan(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("delete-plan")
	id := fs.String("id", "", "Plan ID (required)")
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
		if deleteErr := client.Plans.Delete(ctx, *id); deleteErr != nil {
			return deleteErr
		}
		return writef(os.Stdout, "Deactivated plan %s\n", *id)
	})
}
