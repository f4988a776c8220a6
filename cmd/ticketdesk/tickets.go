package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/target/ticketdesk/internal/domain/nav"
	"github.com/target/ticketdesk/internal/domain/ticket"
	"github.com/target/ticketdesk/internal/service"
)

const timeLayout = "2006-01-02 15:04"

func runTickets(c *commandContext, args []string) error {
	fs := newFlagSet(c, "tickets")
	format := addOutputFlag(fs)
	query := fs.StringP("query", "q", "", "JMESPath expression applied to the ticket list, e.g. \"[?status=='open'].title\"")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := service.ValidateTicketQuery(*query); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if _, err := navigate(c, nav.PageTickets, nil); err != nil {
		return err
	}

	tickets, err := c.App.Tickets.List(c.Ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(*query) != "" {
		result, err := service.QueryTickets(tickets, *query)
		if err != nil {
			return err
		}
		f := *format
		if f == outputTable {
			f = outputJSON
		}
		return render(c.Stdout, f, result, nil)
	}

	return render(c.Stdout, *format, tickets, func(tw *tabwriter.Writer) error {
		return writeTicketTable(tw, tickets)
	})
}

func writeTicketTable(tw *tabwriter.Writer, tickets []ticket.Ticket) error {
	if len(tickets) == 0 {
		return writeln(tw, "(no tickets)")
	}
	if err := writeln(tw, "ID\tSTATUS\tPRIORITY\tASSIGNEE\tCREATED\tTITLE"); err != nil {
		return err
	}
	for _, t := range tickets {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Status, orDash(string(t.Priority)), orDash(t.Assignee()),
			t.CreatedAt.Local().Format(timeLayout), t.Title); err != nil {
			return err
		}
	}
	return nil
}

func runTicket(c *commandContext, args []string) error {
	fs := newFlagSet(c, "ticket")
	format := addOutputFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one ticket id", errUsage)
	}
	id := fs.Arg(0)
	user, err := navigate(c, nav.PageTicketDetail, nav.Params{nav.ParamID: id})
	if err != nil {
		return err
	}

	t, err := c.App.Tickets.Get(c.Ctx, id)
	if err != nil {
		return err
	}
	return render(c.Stdout, *format, t, func(tw *tabwriter.Writer) error {
		rows := [][2]string{
			{"ID", t.ID},
			{"Title", t.Title},
			{"Status", string(t.Status)},
			{"Priority", orDash(string(t.Priority))},
			{"Type", orDash(deref(t.TicketType))},
			{"Created by", t.CreatedBy},
			{"Assigned to", orDash(t.Assignee())},
			{"Required skills", orDash(strings.Join(t.RequiredSkills, ", "))},
			{"Created", t.CreatedAt.Local().Format(timeLayout)},
		}
		if t.UpdatedAt != nil {
			rows = append(rows, [2]string{"Updated", t.UpdatedAt.Local().Format(timeLayout)})
		}
		for _, r := range rows {
			if err := writef(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
				return err
			}
		}
		if err := writef(tw, "\n%s\n", t.Description); err != nil {
			return err
		}
		if t.AINotes != nil && *t.AINotes != "" {
			if err := writef(tw, "\nAI notes:\n%s\n", *t.AINotes); err != nil {
				return err
			}
		}
		if ticket.CanTransition(user, t) {
			return writef(tw, "\nYou may change this ticket's status (ticketdesk set-status %s STATUS).\n", t.ID)
		}
		return nil
	})
}

func runCreateTicket(c *commandContext, args []string) error {
	fs := newFlagSet(c, "create-ticket")
	title := fs.String("title", "", "Ticket title")
	description := fs.String("description", "", "Ticket description")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	user, err := navigate(c, nav.PageTickets, nav.Params{nav.ParamShowCreateModal: true})
	if err != nil {
		return err
	}
	if !ticket.CanCreate(user) {
		c.Logger.Warn("ticket creation is normally offered to the user role only", "role", string(user.Role))
	}

	t, err := c.App.Tickets.Create(c.Ctx, *title, *description)
	if err != nil {
		return err
	}
	// Back to the list with the modal closed.
	if err := c.App.Router.Navigate(nav.PageTickets, nil); err != nil {
		return err
	}
	return writef(c.Stdout, "%s\n", t.ID)
}

func runSetStatus(c *commandContext, args []string) error {
	fs := newFlagSet(c, "set-status")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: expected ticket id and status", errUsage)
	}
	id := fs.Arg(0)
	status, err := ticket.ParseStatus(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if _, err := navigate(c, nav.PageTicketDetail, nav.Params{nav.ParamID: id}); err != nil {
		return err
	}

	t, err := c.App.Tickets.UpdateStatusByID(c.Ctx, id, status)
	if err != nil {
		return err
	}
	return writef(c.Stdout, "%s is now %s\n", t.ID, t.Status)
}

func runDashboard(c *commandContext, args []string) error {
	fs := newFlagSet(c, "dashboard")
	format := addOutputFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if _, err := navigate(c, nav.PageDashboard, nil); err != nil {
		return err
	}

	d, err := c.App.Dashboard.Load(c.Ctx)
	if err != nil {
		return err
	}
	return render(c.Stdout, *format, d, func(tw *tabwriter.Writer) error {
		if err := writef(tw, "%s\n\n", d.Greeting); err != nil {
			return err
		}
		if d.Stats != nil {
			if err := writeStats(tw, *d.Stats); err != nil {
				return err
			}
			if err := writeln(tw); err != nil {
				return err
			}
		}
		return writeTicketTable(tw, d.Tickets)
	})
}

func runStats(c *commandContext, args []string) error {
	fs := newFlagSet(c, "stats")
	format := addOutputFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if _, err := navigate(c, nav.PageDashboard, nil); err != nil {
		return err
	}

	stats, err := c.App.Client.DashboardStats(c.Ctx)
	if err != nil {
		return err
	}
	return render(c.Stdout, *format, stats, func(tw *tabwriter.Writer) error {
		return writeStats(tw, stats)
	})
}

func writeStats(tw *tabwriter.Writer, s ticket.DashboardStats) error {
	return writef(tw, "Total Tickets:\t%d\nOpen Tickets:\t%d\nResolved Tickets:\t%d\nUrgent Priority:\t%d\n",
		s.Total, s.Open, s.Resolved, s.Urgent)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
