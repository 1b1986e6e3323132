package usecase

import (
	"strings"

	"chatbot-nlp-service/internal/model"
)

// specialTag is the closed set of tags resolved before catalog lookup.
type specialTag int

const (
	specialNone specialTag = iota
	specialTime
	specialDate
	specialMath
)

func resolveSpecial(tag string) specialTag {
	switch tag {
	case TagTime:
		return specialTime
	case TagDate:
		return specialDate
	case TagMath:
		return specialMath
	default:
		return specialNone
	}
}

// respond maps a resolved tag plus extracted context to a reply string.
// Special tags bypass the catalog and the random-template mechanism entirely;
// unknown tags (including the synthetic fallback) get the generic apology.
func (uc *implUseCase) respond(tag string, ents []string, sent model.Sentiment) string {
	switch resolveSpecial(tag) {
	case specialTime:
		return MsgTimePrefix + uc.now().Format(timeFormat) + "."
	case specialDate:
		return MsgDatePrefix + uc.now().Format(dateFormat) + "."
	case specialMath:
		return MsgMathPrompt
	}

	rec, ok := uc.catalog.Get(tag)
	if !ok || len(rec.Responses) == 0 {
		return MsgUnknownTag
	}

	uc.randMu.Lock()
	idx := uc.rand.Intn(len(rec.Responses))
	uc.randMu.Unlock()
	reply := rec.Responses[idx]

	switch sent {
	case model.SentimentPositive:
		reply = PrefixPositive + reply
	case model.SentimentNegative:
		reply = PrefixNegative + reply
	}

	if len(ents) > 0 {
		reply += EntityNoticePrefix + strings.Join(ents, ", ") + EntityNoticeSuffix
	}
	return reply
}
