package bookings

import (
	"fmt"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"homeservice-backend/models"
)

// TwilioNotifier sends a booking confirmation to phone-contact bookings
// via SMS or WhatsApp. Email-contact bookings are only logged; there is
// no outbound mail integration. Without Twilio credentials the notifier
// is a no-op, so local setups work out of the box.
type TwilioNotifier struct {
	client  *twilio.RestClient
	log     *zap.Logger
	enabled bool
}

func NewTwilioNotifier(log *zap.Logger) *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	n := &TwilioNotifier{
		log:     log,
		enabled: accountSid != "" && authToken != "",
	}
	if !n.enabled {
		log.Info("Twilio credentials not set, booking confirmations disabled")
		return n
	}

	n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return n
}

func (n *TwilioNotifier) BookingConfirmed(b *models.Booking) {
	if b.ContactMethod != models.ContactMethodPhone {
		n.log.Info("booking confirmed, no message channel for contact method",
			zap.String("bookingId", b.ID.String()),
			zap.String("contactMethod", b.ContactMethod))
		return
	}
	if !n.enabled {
		return
	}

	serviceName := "your service"
	if b.Service != nil {
		serviceName = b.Service.Name
	}
	message := fmt.Sprintf("Hi %s, your %s booking for %s (%s) is confirmed.",
		b.CustomerName, serviceName, b.Date.Format("02 Jan 2006"), b.TimeSlot)

	// WhatsApp if the number is in E.164 form, otherwise plain SMS.
	to := b.Phone
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if strings.HasPrefix(b.Phone, "+") {
		to = "whatsapp:" + b.Phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		n.log.Error("failed to send booking confirmation",
			zap.String("bookingId", b.ID.String()), zap.Error(err))
		return
	}
	if resp.Sid != nil {
		n.log.Info("booking confirmation sent",
			zap.String("bookingId", b.ID.String()), zap.String("sid", *resp.Sid))
	} else {
		n.log.Info("booking confirmation sent, no SID returned",
			zap.String("bookingId", b.ID.String()))
	}
}
