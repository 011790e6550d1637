package main

import (
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeBot records every Chattable passed to Send.
type fakeBot struct {
	sent    []tgbotapi.Chattable
	sendErr error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.sendErr
}

func TestNotifyTelegramSkipsHealthyRuns(t *testing.T) {
	bot := &fakeBot{}
	notifyTelegram(bot, 1, AggregateResult{Overall: SeverityOK, OKMessages: []string{"app alive"}})
	notifyTelegram(bot, 1, AggregateResult{Overall: SeverityWarning, WarningMessages: []string{"app heap 91% >= 90%"}})
	if len(bot.sent) != 0 {
		t.Fatalf("sent %d messages, want 0", len(bot.sent))
	}
}

func TestNotifyTelegramAlertsOnCritical(t *testing.T) {
	bot := &fakeBot{}
	agg := AggregateResult{
		Overall:          SeverityCritical,
		CriticalMessages: []string{"app perm/metaspace 96% >= 95%", "other gc statistics unavailable"},
	}
	notifyTelegram(bot, 42, agg)

	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(bot.sent))
	}
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want MessageConfig", bot.sent[0])
	}
	if msg.ChatID != 42 {
		t.Fatalf("chat id = %d, want 42", msg.ChatID)
	}
	if msg.ParseMode != "Markdown" {
		t.Fatalf("parse mode = %q", msg.ParseMode)
	}
	if !strings.Contains(msg.Text, "CRITICAL") {
		t.Fatalf("text missing severity: %q", msg.Text)
	}
	for _, want := range agg.CriticalMessages {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("text missing %q: %q", want, msg.Text)
		}
	}
}

func TestNotifyTelegramNilBotIsSafe(t *testing.T) {
	notifyTelegram(nil, 1, AggregateResult{Overall: SeverityCritical})
	safeSend(nil, tgbotapi.NewMessage(1, "x"))
}

func TestSafeSendSwallowsErrors(t *testing.T) {
	bot := &fakeBot{sendErr: errors.New("network down")}
	safeSend(bot, tgbotapi.NewMessage(1, "x"))
	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(bot.sent))
	}
}

func TestNewTelegramBotDisabledConfigurations(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) {},
		func(c *Config) { c.Telegram.Enabled = true },
		func(c *Config) { c.Telegram.Enabled = true; c.Telegram.Token = "t" },
	}
	for i, mutate := range cases {
		cfg := testConfig()
		mutate(cfg)
		if bot := newTelegramBot(cfg); bot != nil {
			t.Errorf("case %d: expected nil bot for incomplete config", i)
		}
	}
}
