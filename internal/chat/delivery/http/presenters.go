package http

import (
	"time"

	"chatbot-nlp-service/internal/chat"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message string `json:"message"`
}

func (r sendMessageReq) toInput() chat.RouteInput {
	return chat.RouteInput{Message: r.Message}
}

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) toInput() chat.HistoryInput {
	return chat.HistoryInput{Limit: r.Limit}
}

// --- Response DTOs ---

type sendMessageResp struct {
	Response string `json:"response"`
}

func (h *handler) newSendMessageResp(out chat.RouteOutput) sendMessageResp {
	return sendMessageResp{Response: out.Reply}
}

type entryResp struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type historyResp struct {
	Entries []entryResp `json:"entries"`
	Total   int         `json:"total"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = entryResp{
			ID:        e.ID,
			Text:      e.Text,
			CreatedAt: e.CreatedAt,
		}
	}
	return historyResp{
		Entries: entries,
		Total:   out.Total,
	}
}
