package telegram

import (
	"futbolamigos/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) sendMessage(chatID int64, text string, kbType string) {
	if text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)

	switch kbType {
	case KbOutcome:
		msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(labelTeamAWin),
				tgbotapi.NewKeyboardButton(labelDraw),
				tgbotapi.NewKeyboardButton(labelTeamBWin),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(labelCancel),
			),
		)
	case KbScore:
		msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("1"),
				tgbotapi.NewKeyboardButton("2"),
				tgbotapi.NewKeyboardButton("3"),
				tgbotapi.NewKeyboardButton("4"),
				tgbotapi.NewKeyboardButton("5"),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("6"),
				tgbotapi.NewKeyboardButton("7"),
				tgbotapi.NewKeyboardButton("8"),
				tgbotapi.NewKeyboardButton("9"),
				tgbotapi.NewKeyboardButton("10"),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(labelSkip),
				tgbotapi.NewKeyboardButton(labelCancel),
			),
		)
	case KbCancel:
		msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(labelCancel),
			),
		)
	default:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	}

	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("failed to send message: %v", err)
	}
}

// The structural outcome tag is what gets stored; these labels only exist
// at the chat surface.
func outcomeLabel(o models.Outcome) string {
	switch o {
	case models.OutcomeTeamA:
		return labelTeamAWin
	case models.OutcomeTeamB:
		return labelTeamBWin
	default:
		return labelDraw
	}
}

func outcomeFromLabel(label string) (models.Outcome, bool) {
	switch label {
	case labelTeamAWin:
		return models.OutcomeTeamA, true
	case labelTeamBWin:
		return models.OutcomeTeamB, true
	case labelDraw:
		return models.OutcomeDraw, true
	default:
		return "", false
	}
}
