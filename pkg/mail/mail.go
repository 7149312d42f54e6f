package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=mail.go -destination=mock/mail_mock.go -package=mock github.com/savioruz/reserva/pkg/mail Service

//go:embed template/*.html
var templates embed.FS

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// BookingLine is one reserved slot or service printed in a booking email.
type BookingLine struct {
	Label  string
	Detail string
	Amount string
}

// BookingData is the payload of every booking email.
type BookingData struct {
	CustomerName  string
	Token         string
	Status        string
	UsageDate     string
	PaymentMethod string
	Lines         []BookingLine
	GrandTotal    string
	Reason        string
	LookupURL     string
}

type Service interface {
	SendBookingReceived(to string, data BookingData) error
	SendBookingCanceled(to string, data BookingData) error
}

type service struct {
	config   Config
	received *template.Template
	canceled *template.Template
	send     func(m *gomail.Message) error
}

func New(config Config) (Service, error) {
	received, err := template.ParseFS(templates, "template/booking_received.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse booking received template: %w", err)
	}

	canceled, err := template.ParseFS(templates, "template/booking_canceled.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse booking canceled template: %w", err)
	}

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword)

	return &service{
		config:   config,
		received: received,
		canceled: canceled,
		send:     func(m *gomail.Message) error { return d.DialAndSend(m) },
	}, nil
}

func (s *service) SendBookingReceived(to string, data BookingData) error {
	return s.render(to, "Booking "+data.Token+" received", s.received, data)
}

func (s *service) SendBookingCanceled(to string, data BookingData) error {
	return s.render(to, "Booking "+data.Token+" canceled", s.canceled, data)
}

func (s *service) render(to, subject string, tpl *template.Template, data BookingData) error {
	var body bytes.Buffer
	if err := tpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", tpl.Name(), err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromEmail, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	return s.send(m)
}
