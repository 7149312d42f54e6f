package mail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func newTestService(t *testing.T) (*service, *[]*gomail.Message) {
	svc, err := New(Config{
		SMTPHost:  "localhost",
		SMTPPort:  587,
		FromEmail: "noreply@reserva.test",
		FromName:  "Reserva",
	})
	require.NoError(t, err)

	s := svc.(*service)
	sent := make([]*gomail.Message, 0)
	s.send = func(m *gomail.Message) error {
		sent = append(sent, m)

		return nil
	}

	return s, &sent
}

func TestMailService_Templates(t *testing.T) {
	s, _ := newTestService(t)

	require.NotNil(t, s.received)
	require.NotNil(t, s.canceled)
}

func TestMailService_SendBookingReceived(t *testing.T) {
	s, sent := newTestService(t)

	err := s.SendBookingReceived("guest@example.com", BookingData{
		CustomerName: "An",
		Token:        "PD7KQ2M9XA",
		UsageDate:    "2025-06-01",
		GrandTotal:   "150.000 ₫",
		Lines:        []BookingLine{{Label: "Sân 1", Detail: "17:00 - 18:00", Amount: "150.000 ₫"}},
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	msg := (*sent)[0]
	assert.Equal(t, []string{"guest@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Booking PD7KQ2M9XA received"}, msg.GetHeader("Subject"))
}

func TestMailService_SendError(t *testing.T) {
	s, _ := newTestService(t)
	s.send = func(*gomail.Message) error { return errors.New("dial tcp: refused") }

	err := s.SendBookingCanceled("guest@example.com", BookingData{Token: "PD7KQ2M9XA"})
	assert.Error(t, err)
}
