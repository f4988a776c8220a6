package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/target/ticketdesk/internal/domain/nav"
)

func runUsers(c *commandContext, args []string) error {
	fs := newFlagSet(c, "users")
	format := addOutputFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if _, err := navigate(c, nav.PageAdmin, nil); err != nil {
		return err
	}

	users, err := c.App.Admin.ListUsers(c.Ctx)
	if err != nil {
		return err
	}
	return render(c.Stdout, *format, users, func(tw *tabwriter.Writer) error {
		if err := writeln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSKILLS\tACTIVE"); err != nil {
			return err
		}
		for _, u := range users {
			if err := writef(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
				u.ID, u.Username, u.Email, u.Role, orDash(strings.Join(u.Skills, ",")), u.IsActive); err != nil {
				return err
			}
		}
		return nil
	})
}

func runUpdateUser(c *commandContext, args []string) error {
	fs := newFlagSet(c, "update-user")
	role := fs.String("role", "", "New role: user, moderator or admin")
	skills := fs.String("skills", "", "Comma separated skills (replaces the current list)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one user id", errUsage)
	}
	if *role == "" {
		return fmt.Errorf("%w: --role is required", errUsage)
	}
	if _, err := navigate(c, nav.PageAdmin, nil); err != nil {
		return err
	}

	u, err := c.App.Admin.UpdateUser(c.Ctx, fs.Arg(0), *role, *skills)
	if err != nil {
		return err
	}
	return writef(c.Stdout, "%s\t%s\t%s\n", u.ID, u.Role, strings.Join(u.Skills, ","))
}

func runRerunAI(c *commandContext, args []string) error {
	fs := newFlagSet(c, "rerun-ai")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if _, err := navigate(c, nav.PageAdmin, nil); err != nil {
		return err
	}
	return c.App.Admin.RerunAI(c.Ctx)
}
