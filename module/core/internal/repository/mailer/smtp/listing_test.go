package smtp

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

var testListing = &domain.Listing{
	Name:  "Sunny 1br",
	Price: "$2400",
	URL:   "https://x/1.html",
	Annotation: domain.Annotation{
		Area:     "rockridge",
		NearBart: true,
		Bart:     "Rockridge",
		BartDist: domain.KnownDistance(0.4),
	},
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Server: "smtp", User: "u", Pass: "p", ToEmail: "t"}.Enabled())
}

func TestSendListing(t *testing.T) {
	d := &fakeDialer{}
	m := NewListingMailer(Config{Server: "smtp.example.com", Port: 587, User: "bot@example.com", Pass: "x", ToEmail: "me@example.com"})
	m.dialer = d

	require.NoError(t, m.SendListing(context.Background(), testListing))
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"bot@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"me@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Apartment in rockridge: Sunny 1br ($2400)"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Nearest BART: Rockridge")
}

func TestSendListing_Error(t *testing.T) {
	m := NewListingMailer(Config{Server: "smtp", User: "u", Pass: "p", ToEmail: "t"})
	m.dialer = &fakeDialer{err: errors.New("auth failed")}

	assert.Error(t, m.SendListing(context.Background(), testListing))
}

func TestBody_NoStation(t *testing.T) {
	out := body(&domain.Listing{Name: "x"})
	assert.Contains(t, out, "Nearest BART: none nearby")
	assert.Contains(t, out, "BART distance (km): N/A")
}
