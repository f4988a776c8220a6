package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/nav"
	"github.com/target/ticketdesk/internal/ports"
	"github.com/target/ticketdesk/internal/service"
	"github.com/target/ticketdesk/internal/util"
)

type loginOptions struct {
	Email    string
	Password string
}

type signupOptions struct {
	FullName string
	Username string
	Email    string
	Password string
}

func runLogin(c *commandContext, args []string) error {
	var opts loginOptions
	fs := newFlagSet(c, "login")
	fs.StringVar(&opts.Email, "email", "", "Account email")
	fs.StringVar(&opts.Password, "password", "", "Account password (read from stdin when omitted)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if opts.Email == "" {
		return fmt.Errorf("%w: --email is required", errUsage)
	}
	if err := enterAuthPage(c, nav.PageLogin); err != nil {
		return err
	}
	password, err := resolvePassword(c, opts.Password)
	if err != nil {
		return err
	}

	user, err := c.App.Session.Login(c.Ctx, opts.Email, password)
	if err != nil {
		return err
	}
	return writef(c.Stdout, "Signed in as %s (%s)\n", user.DisplayName(), user.Role)
}

func runSignup(c *commandContext, args []string) error {
	var opts signupOptions
	fs := newFlagSet(c, "signup")
	fs.StringVar(&opts.FullName, "full-name", "", "Full name")
	fs.StringVar(&opts.Username, "username", "", "Username")
	fs.StringVar(&opts.Email, "email", "", "Account email")
	fs.StringVar(&opts.Password, "password", "", "Account password (read from stdin when omitted)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if opts.Email == "" || opts.Username == "" {
		return fmt.Errorf("%w: --email and --username are required", errUsage)
	}
	if err := enterAuthPage(c, nav.PageSignup); err != nil {
		return err
	}
	password, err := resolvePassword(c, opts.Password)
	if err != nil {
		return err
	}

	user, err := c.App.Session.Signup(c.Ctx, ports.SignupInput{
		FullName: opts.FullName,
		Username: opts.Username,
		Email:    opts.Email,
		Password: password,
	})
	if err != nil {
		return err
	}
	return writef(c.Stdout, "Account created. Signed in as %s (%s)\n", user.DisplayName(), user.Role)
}

// enterAuthPage signs out any existing session first so the auth views are reachable.
func enterAuthPage(c *commandContext, page nav.Page) error {
	if c.App.Router.View().Kind == service.ViewMain {
		if err := c.App.Session.Logout(c.Ctx); err != nil {
			return err
		}
	}
	return c.App.Router.Navigate(page, nil)
}

func resolvePassword(c *commandContext, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if c.Stdin == nil {
		return "", fmt.Errorf("%w: --password is required", errUsage)
	}
	_ = writef(c.Stderr, "Password: ")
	line, err := bufio.NewReader(c.Stdin).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", fmt.Errorf("%w: empty password", errUsage)
	}
	return line, nil
}

func runLogout(c *commandContext, args []string) error {
	fs := newFlagSet(c, "logout")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := c.App.Session.Logout(c.Ctx); err != nil {
		return err
	}
	return writeln(c.Stdout, "Signed out")
}

func runWhoami(c *commandContext, args []string) error {
	fs := newFlagSet(c, "whoami")
	format := addOutputFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	user, err := requireSignedIn(c)
	if err != nil {
		return err
	}
	snap := c.App.Session.Snapshot()
	return render(c.Stdout, *format, user, func(tw *tabwriter.Writer) error {
		rows := [][2]string{
			{"ID", user.ID},
			{"Name", user.DisplayName()},
			{"Email", user.Email},
			{"Username", user.Username},
			{"Role", string(user.Role)},
			{"Skills", orDash(strings.Join(user.Skills, ", "))},
		}
		if !snap.ExpiresAt.IsZero() {
			rows = append(rows, [2]string{"Session expires", fmt.Sprintf("%s (%s)",
				snap.ExpiresAt.Local().Format("2006-01-02 15:04:05"), util.FormatRemaining(snap.ExpiresAt, time.Now()))})
		}
		for _, r := range rows {
			if err := writef(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
				return err
			}
		}
		return nil
	})
}

func runPages(c *commandContext, args []string) error {
	fs := newFlagSet(c, "pages")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	for _, p := range c.App.Router.Offered() {
		if err := writeln(c.Stdout, string(p)); err != nil {
			return err
		}
	}
	return nil
}

// requireSignedIn returns the identity restored by Init, or explains how to get one.
func requireSignedIn(c *commandContext) (domainauth.User, error) {
	if c.App.Session.Snapshot().Invalidated {
		return domainauth.User{}, fmt.Errorf("stored session is no longer valid; run `ticketdesk login`")
	}
	user, err := service.RequireIdentity(c.App.Session)
	if err != nil {
		return domainauth.User{}, fmt.Errorf("%w; run `ticketdesk login`", err)
	}
	return user, nil
}

// navigate moves the router to page; it fails when the session is not signed in.
func navigate(c *commandContext, page nav.Page, params nav.Params) (domainauth.User, error) {
	user, err := requireSignedIn(c)
	if err != nil {
		return domainauth.User{}, err
	}
	if err := c.App.Router.Navigate(page, params); err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}
