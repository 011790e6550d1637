package main

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI abstracts the Telegram methods used for alerting.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// newTelegramBot connects the alert channel when configured, nil otherwise.
func newTelegramBot(cfg *Config) BotAPI {
	if !cfg.Telegram.Enabled || cfg.Telegram.Token == "" || cfg.Telegram.ChatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		slog.Error("telegram bot init failed", "err", err)
		return nil
	}
	return bot
}

// notifyTelegram pushes one alert message when the run ended CRITICAL or
// worse. The alert is best-effort: the report line and exit code are the
// contract, a send failure is only logged.
func notifyTelegram(bot BotAPI, chatID int64, agg AggregateResult) {
	if bot == nil || agg.Overall.rank() < SeverityCritical.rank() {
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚨 *JVM check %s*\n\n", agg.Overall))
	if len(agg.CriticalMessages) == 0 {
		b.WriteString("no target produced a result\n")
	}
	for _, msg := range agg.CriticalMessages {
		b.WriteString("• " + msg + "\n")
	}

	m := tgbotapi.NewMessage(chatID, b.String())
	m.ParseMode = "Markdown"
	safeSend(bot, m)
}

// safeSend sends a Telegram message and logs any error.
func safeSend(bot BotAPI, msg tgbotapi.Chattable) {
	if bot == nil {
		return
	}
	if _, err := bot.Send(msg); err != nil {
		slog.Error("telegram send failed", "err", err)
	}
}
