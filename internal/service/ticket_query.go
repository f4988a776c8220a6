package service

import (
	"encoding/json"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	"github.com/target/ticketdesk/internal/domain/ticket"
	apperrors "github.com/target/ticketdesk/internal/errors"
)

// ValidateTicketQuery checks that expr compiles. An empty expression is valid.
func ValidateTicketQuery(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid query")
	}
	return nil
}

// QueryTickets evaluates a JMESPath expression against the JSON form of
// tickets, e.g. "[?status=='open'].title". An empty expression returns the
// JSON form unchanged.
func QueryTickets(tickets []ticket.Ticket, expr string) (any, error) {
	if err := ValidateTicketQuery(expr); err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode tickets")
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode tickets")
	}
	if strings.TrimSpace(expr) == "" {
		return data, nil
	}
	out, err := jmespath.Search(expr, data)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "evaluate query")
	}
	return out, nil
}
