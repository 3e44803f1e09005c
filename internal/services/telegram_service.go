package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vaicrm/internal/models"
)

// TelegramService anuncia eventos de venda num chat da equipe.
// Receiver nil ou sem token vira no-op: notificação é melhor esforço.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) *TelegramService {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg] bot não inicializado: %v", err)
		return nil
	}
	return &TelegramService{bot: bot, chatID: chatID}
}

func (t *TelegramService) VendaCriada(d *models.Deal) {
	t.send(fmt.Sprintf("🆕 Nova venda: <b>%s</b>\nVendedor: %s\nProduto: %s\nTotal: R$ %.2f",
		d.Empresa, d.Owner, d.Produto, d.Total))
}

func (t *TelegramService) VendaAtivada(d *models.Deal) {
	t.send(fmt.Sprintf("✅ Cliente ativo: <b>%s</b>\nVendedor: %s\nTotal: R$ %.2f",
		d.Empresa, d.Owner, d.Total))
}

func (t *TelegramService) send(text string) {
	if t == nil || t.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send] falhou: %v", err)
	}
}
