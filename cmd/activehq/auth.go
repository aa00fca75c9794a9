package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/domain/model"
)

func authCommands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in and persist the session",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Clear the persisted session",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the signed-in user and gym",
			run:         runWhoami,
		},
		"register": {
			name:        "register",
			description: "Register a new gym with its owner account",
			run:         runRegister,
		},
		"change-password": {
			name:        "change-password",
			description: "Change the signed-in user's password",
			run:         runChangePassword,
		},
		"list-users": {
			name:        "list-users",
			description: "List staff accounts for the current gym",
			run:         runListUsers,
		},
		"add-user": {
			name:        "add-user",
			description: "Add a staff account to the current gym",
			run:         runAddUser,
		},
	}
}

type loginOptions struct {
	Email    string
	Password string
	Output   outputOptions
}

func parseLoginFlags(args []string) (loginOptions, error) {
	fs := newFlagSet("login")

	var opts loginOptions
	fs.StringVar(&opts.Email, "email", "", "Account email (required)")
	fs.StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return loginOptions{}, err
	}

	opts.Email = strings.TrimSpace(opts.Email)
	if opts.Email == "" {
		return loginOptions{}, errors.New("--email is required")
	}
	return opts, nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	opts, err := parseLoginFlags(args)
	if err != nil {
		return err
	}

	if opts.Password == "" {
		pw, promptErr := promptSecret("Password: ")
		if promptErr != nil {
			return promptErr
		}
		opts.Password = pw
	}
	if opts.Password == "" {
		return errors.New("password is required")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		sess, signInErr := client.Auth.SignIn(ctx, opts.Email, opts.Password)
		if signInErr != nil {
			return signInErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(sess, opts.Output)
		}
		return printSession(sess)
	})
}

func promptSecret(label string) (string, error) {
	if err := write(os.Stdout, label); err != nil {
		return "", fmt.Errorf("print prompt: %w", err)
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		client.Auth.SignOut(ctx)
		return writeln(os.Stdout, "Signed out")
	})
}

type whoamiOptions struct {
	Verify bool
	Output outputOptions
}

func parseWhoamiFlags(args []string) (whoamiOptions, error) {
	fs := newFlagSet("whoami")

	var opts whoamiOptions
	fs.BoolVar(&opts.Verify, "verify", false, "Re-fetch user and gym from the server instead of the local session")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return whoamiOptions{}, err
	}
	return opts, nil
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	opts, err := parseWhoamiFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		sess := client.Session().Snapshot()
		if opts.Verify {
			verified, verifyErr := verifySession(ctx, client)
			if verifyErr != nil {
				return verifyErr
			}
			sess = verified
		}

		if opts.Output.wantsJSON() {
			return emitJSON(sess, opts.Output)
		}
		return printSession(sess)
	})
}

// verifySession fetches the user and gym records in parallel and refreshes
// the cached copies in the session store.
func verifySession(ctx context.Context, client *api.Client) (auth.Session, error) {
	var (
		user *model.User
		gym  *model.Gym
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := client.Auth.Me(gctx)
		if err != nil {
			return fmt.Errorf("fetch current user: %w", err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		gm, err := client.Gym.Current(gctx)
		if err != nil {
			return fmt.Errorf("fetch current gym: %w", err)
		}
		gym = gm
		return nil
	})
	if err := g.Wait(); err != nil {
		return auth.Session{}, err
	}

	client.Session().SetUser(ctx, user)
	client.Session().SetGym(ctx, gym)
	return client.Session().Snapshot(), nil
}

func printSession(sess auth.Session) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if sess.User != nil {
		if err := writef(w, "User\t%s <%s>\n", sess.User.Name, sess.User.Email); err != nil {
			return fmt.Errorf("write session user: %w", err)
		}
		if err := writef(w, "Role\t%s\n", sess.User.Role); err != nil {
			return fmt.Errorf("write session role: %w", err)
		}
	}
	if sess.Gym != nil {
		if err := writef(w, "Gym\t%s\n", sess.Gym.Name); err != nil {
			return fmt.Errorf("write session gym: %w", err)
		}
		if err := writef(w, "Subscription\t%s\n", sess.Gym.SubscriptionStatus); err != nil {
			return fmt.Errorf("write session subscription: %w", err)
		}
	}
	if err := writef(w, "Signed In\t%t\n", sess.Authenticated); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush session table: %w", err)
	}
	return nil
}

type registerOptions struct {
	Req    auth.RegisterRequest
	Output outputOptions
}

func parseRegisterFlags(args []string) (registerOptions, error) {
	fs := newFlagSet("register")

	var opts registerOptions
	fs.StringVar(&opts.Req.GymName, "gym-name", "", "Gym name (required)")
	fs.StringVar(&opts.Req.GymEmail, "gym-email", "", "Gym contact email (required)")
	fs.StringVar(&opts.Req.GymPhone, "gym-phone", "", "Gym contact phone (required)")
	fs.StringVar(&opts.Req.City, "city", "", "Gym city")
	fs.StringVar(&opts.Req.State, "state", "", "Gym state")
	fs.StringVar(&opts.Req.OwnerName, "owner-name", "", "Owner full name (required)")
	fs.StringVar(&opts.Req.OwnerEmail, "owner-email", "", "Owner sign-in email (required)")
	fs.StringVar(&opts.Req.OwnerPassword, "owner-password", "", "Owner password (prompted when omitted)")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return registerOptions{}, err
	}

	missing := []string{}
	for flagName, value := range map[string]string{
		"--gym-name":    opts.Req.GymName,
		"--gym-email":   opts.Req.GymEmail,
		"--gym-phone":   opts.Req.GymPhone,
		"--owner-name":  opts.Req.OwnerName,
		"--owner-email": opts.Req.OwnerEmail,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, flagName)
		}
	}
	if len(missing) > 0 {
		return registerOptions{}, fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}
	return opts, nil
}

func runRegister(cmdCtx *commandContext, args []string) error {
	opts, err := parseRegisterFlags(args)
	if err != nil {
		return err
	}

	if opts.Req.OwnerPassword == "" {
		pw, promptErr := promptSecret("Owner password: ")
		if promptErr != nil {
			return promptErr
		}
		opts.Req.OwnerPassword = pw
	}
	if opts.Req.OwnerPassword == "" {
		return errors.New("owner password is required")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		resp, registerErr := client.Auth.Register(ctx, opts.Req)
		if registerErr != nil {
			return registerErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(resp, opts.Output)
		}
		if writeErr := writef(os.Stdout, "Registered gym %q (%s)\n", resp.GymName, resp.GymID); writeErr != nil {
			return fmt.Errorf("print register summary: %w", writeErr)
		}
		return printSession(client.Session().Snapshot())
	})
}

func runChangePassword(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("change-password")
	current := fs.String("current", "", "Current password (prompted when omitted)")
	next := fs.String("new", "", "New password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *current == "" {
		pw, err := promptSecret("Current password: ")
		if err != nil {
			return err
		}
		*current = pw
	}
	if *next == "" {
		pw, err := promptSecret("New password: ")
		if err != nil {
			return err
		}
		*next = pw
	}
	if *current == "" || *next == "" {
		return errors.New("both current and new passwords are required")
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}
		if changeErr := client.Auth.ChangePassword(ctx, *current, *next); changeErr != nil {
			return changeErr
		}
		return writeln(os.Stdout, "Password changed")
	})
}

func runListUsers(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("list-users")
	var output outputOptions
	addOutputFlags(fs, &output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		users, listErr := client.Auth.Users(ctx)
		if listErr != nil {
			return listErr
		}

		if output.wantsJSON() {
			return emitJSON(users, output)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if err := writeln(w, "Name\tEmail\tRole\tActive"); err != nil {
			return fmt.Errorf("write users header: %w", err)
		}
		for _, u := range users {
			if err := writef(w, "%s\t%s\t%s\t%t\n", u.Name, u.Email, u.Role, u.IsActive); err != nil {
				return fmt.Errorf("write user row: %w", err)
			}
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush users table: %w", err)
		}
		return nil
	})
}

type addUserOptions struct {
	Req    model.CreateUserRequest
	Phone  string
	Output outputOptions
}

func parseAddUserFlags(args []string) (addUserOptions, error) {
	fs := newFlagSet("add-user")

	var opts addUserOptions
	role := fs.String("role", string(model.RoleStaff), "Account role: owner, manager, or staff")
	fs.StringVar(&opts.Req.Email, "email", "", "Account email (required)")
	fs.StringVar(&opts.Req.Password, "password", "", "Account password (required)")
	fs.StringVar(&opts.Req.Name, "name", "", "Full name (required)")
	fs.StringVar(&opts.Phone, "phone", "", "Phone number")
	addOutputFlags(fs, &opts.Output)

	if err := fs.Parse(args); err != nil {
		return addUserOptions{}, err
	}

	opts.Req.Role = model.UserRole(strings.ToLower(strings.TrimSpace(*role)))
	if !opts.Req.Role.Valid() {
		return addUserOptions{}, fmt.Errorf("invalid role %q", *role)
	}
	if opts.Req.Email == "" || opts.Req.Password == "" || opts.Req.Name == "" {
		return addUserOptions{}, errors.New("--email, --password, and --name are required")
	}
	opts.Req.Phone = stringPtrIfSet(opts.Phone)
	return opts, nil
}

func runAddUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseAddUserFlags(args)
	if err != nil {
		return err
	}

	return withClient(cmdCtx, func(ctx context.Context, client *api.Client) error {
		if authErr := requireSignedIn(client); authErr != nil {
			return authErr
		}

		user, createErr := client.Auth.CreateUser(ctx, opts.Req)
		if createErr != nil {
			return createErr
		}

		if opts.Output.wantsJSON() {
			return emitJSON(user, opts.Output)
		}
		return writef(os.Stdout, "Created %s account %s (%s)\n", user.Role, user.Email, user.ID)
	})
}
