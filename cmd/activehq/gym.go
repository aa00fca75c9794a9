package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/util"
)

func gymCommands() map[string]command {
	return map[string]command{
		"gym": {
			name:        "gym",
			description: "Show the current gym profile",
			run:         runShowGym,
		},
		"update-gym": {
			name:        "update-gym",
			description: "Update the current gym profile",
			run:         runUpdateGym,
		},
	}
}

func runShowGym(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("gym")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		gym, err := client.Gym.Current(ctx)
		if err != nil {
			return err
		}

		if output.wantsJSON() {
			return emitJSON(gym, output)
		}
		return printGym(gym)
	})
}

func printGym(gym *model.Gym) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Name", gym.Name},
		{"Slug", gym.Slug},
		{"Owner", gym.OwnerName},
		{"Email", gym.Email},
		{"Phone", gym.Phone},
		{"City", util.FormatOptional(gym.City)},
		{"State", util.FormatOptional(gym.State)},
		{"GST Number", util.FormatOptional(gym.GSTNumber)},
		{"Subscription", string(gym.SubscriptionStatus)},
		{"Subscription Ends", util.FormatOptional(gym.SubscriptionEnd)},
	}
	for _, row := range rows {
		if err := writef(w, "%s\t%s\n", row.label, row.value); err != nil {
			return fmt.Errorf("write gym row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush gym table: %w", err)
	}
	return nil
}

type updateGymOptions struct {
	Name      string
	OwnerName string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Pincode   string
	GST       string
	Output    outputOptions
}

func parseUpdateGymFlags(args []string) (updateGymOptions, error) {
	fs := newFlagSet("update-gym")

	var opts updateGymOptions
	fs.StringVar(&opts.Name, "name", "", "Gym name")
	fs.StringVar(&opts.OwnerName, "owner-name", "", "Owner full name")
	fs.StringVar(&opts.Email, "email", "", "Contact email")
	fs.StringVar(&opts.Phone, "phone", "", "Contact phone")
	fs.StringVar(&opts.Address, "address", "", "Street address")
	fs.StringVar(&opts.City, "city", "", "City")
	fs.StringVar(&opts.State, "state", "", "State")
	fs.StringVar(&opts.Pincode, "pincode", "", "Postal code")
	fs.StringVar(&opts.GST, "gst", "", "GST number")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return updateGymOptions{}, err
	}
	return opts, nil
}

func (o updateGymOptions) request() model.UpdateGymRequest {
	return model.UpdateGymRequest{
		Name:      stringPtrIfSet(o.Name),
		OwnerName: stringPtrIfSet(o.OwnerName),
		Email:     stringPtrIfSet(o.Email),
		Phone:     stringPtrIfSet(o.Phone),
		Address:   stringPtrIfSet(o.Address),
		City:      stringPtrIfSet(o.City),
		State:     stringPtrIfSet(o.State),
		Pincode:   stringPtrIfSet(o.Pincode),
		GSTNumber: stringPtrIfSet(o.GST),
	}
}

func runUpdateGym(cmdCtx *commandContext, args []string) error {
	opts, err := parseUpdateGymFlags(args)
	if err != nil {
		return err
	}

	req := opts.request()
	if req == (model.UpdateGymRequest{}) {
		return fmt.Errorf("nothing to update: pass at least one field flag")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		gym, updateErr := client.Gym.Update(ctx, req)
		if updateErr != nil {
			return updateErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(gym, opts.Output)
		}
		return printGym(gym)
	})
}
