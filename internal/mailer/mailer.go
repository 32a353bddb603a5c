package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"tripmate/internal/model"
)

// Mailer sends invitation notifications. Delivery is fire-and-forget: it is
// not retried and never part of the caller's transactional guarantee.
type Mailer interface {
	NotifyInvite(invited *model.User, trip *model.Trip, codeValue string)
}

// Invite is one queued invitation notification.
type Invite struct {
	ToEmail  string
	ToName   string
	TripID   string
	Code     string
	Location string
}

// SMTPMailer queues invites on a buffered channel and delivers them from a
// single worker goroutine. A full queue drops the notification rather than
// blocking the inviting request.
type SMTPMailer struct {
	addr  string
	from  string
	queue chan Invite
}

// NewSMTPMailer creates a mailer and starts its delivery worker.
func NewSMTPMailer(addr, from string) *SMTPMailer {
	m := &SMTPMailer{
		addr:  addr,
		from:  from,
		queue: make(chan Invite, 100),
	}
	go m.worker()
	return m
}

var _ Mailer = (*SMTPMailer)(nil)

// NotifyInvite enqueues an invitation email for the invited user.
func (m *SMTPMailer) NotifyInvite(invited *model.User, trip *model.Trip, codeValue string) {
	invite := Invite{
		ToEmail: invited.Email,
		ToName:  invited.Name,
		TripID:  trip.ID.String(),
		Code:    codeValue,
	}
	if trip.Destination.Name != "" {
		invite.Location = trip.Destination.Name
	}
	select {
	case m.queue <- invite:
	default:
		log.Printf("mailer: queue full, dropping invite for %s", invite.ToEmail)
	}
}

func (m *SMTPMailer) worker() {
	for invite := range m.queue {
		if err := m.send(invite); err != nil {
			log.Printf("mailer: send invite to %s: %v", invite.ToEmail, err)
		}
	}
}

func (m *SMTPMailer) send(invite Invite) error {
	subject := "You have been invited to recommend places"
	if invite.Location != "" {
		subject = fmt.Sprintf("Recommend places for a trip to %s", invite.Location)
	}
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nA friend wants your recommendations for their trip. "+
			"Use code %s to join.\r\n",
		invite.ToName, invite.Code,
	)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from, invite.ToEmail, subject, body)
	return smtp.SendMail(m.addr, nil, m.from, []string{invite.ToEmail}, []byte(msg))
}
