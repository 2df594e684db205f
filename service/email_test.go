package service

import (
	"errors"
	"testing"
	"time"

	"expenses/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestRenderReport(t *testing.T) {
	body, err := renderReport(Period{Year: 2026, Month: time.February}, BuildBreakdown([]ExpenseView{
		{Category: "Food", Amount: 100},
		{Category: "<b>Fees</b>", Amount: 5.5},
	}))
	require.NoError(t, err)

	assert.Contains(t, body, "Expense report 2026-02")
	assert.Contains(t, body, "$100.00")
	assert.Contains(t, body, "$105.50")
	assert.Contains(t, body, "&lt;b&gt;Fees&lt;/b&gt;")
	assert.NotContains(t, body, "<b>Fees</b>")

	empty, err := renderReport(Period{Year: 2026, Month: time.March}, BuildBreakdown(nil))
	require.NoError(t, err)
	assert.Contains(t, empty, "No expenses recorded this month.")
}

func TestReportMailer_Disabled(t *testing.T) {
	sender := &fakeSender{}
	m := NewReportMailerWithSender(&config.EmailConfig{}, sender)

	err := m.SendMonthlyReport("me@example.com", Period{Year: 2026, Month: time.February}, Breakdown{})
	assert.ErrorIs(t, err, ErrEmailDisabled)
	assert.Empty(t, sender.sent)
}

func TestReportMailer_Send(t *testing.T) {
	sender := &fakeSender{}
	m := NewReportMailerWithSender(&config.EmailConfig{Enabled: true, Username: "bot@example.com", From: "Expense Tracker"}, sender)

	require.NoError(t, m.SendMonthlyReport("me@example.com", Period{Year: 2026, Month: time.February}, Breakdown{}))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"me@example.com"}, sender.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Expense report 2026-02"}, sender.sent[0].GetHeader("Subject"))

	sender.err = errors.New("smtp down")
	err := m.SendMonthlyReport("me@example.com", Period{Year: 2026, Month: time.February}, Breakdown{})
	assert.ErrorContains(t, err, "smtp down")
}

func TestNewReportMailer(t *testing.T) {
	m := NewReportMailer(&config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 587})
	assert.True(t, m.Enabled())
	assert.NotNil(t, m.sender)
}
