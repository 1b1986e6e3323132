package usecase

// Pipeline defaults
const (
	DefaultTopK      = 2
	DefaultThreshold = 0.3
)

// Special tags resolved ahead of catalog lookup, plus the synthetic tag
// emitted when no classification clears the threshold.
const (
	TagTime     = "time"
	TagDate     = "date"
	TagMath     = "math"
	TagFallback = "fallback"
)

// Clock formats
const (
	timeFormat = "03:04 PM"
	dateFormat = "Monday, 02 January 2006"
)

// Fixed reply strings
const (
	MsgMathApology = "I couldn't evaluate that. Please check your equation or expression syntax."
	MsgMathPrompt  = "Send me any math expression or equation you'd like to solve!"
	MsgUnknownTag  = "I'm not sure how to respond to that. Can you try rephrasing?"

	MsgTimePrefix = "Current time is "
	MsgDatePrefix = "Today's date is "

	PrefixPositive = "That's great! "
	PrefixNegative = "I'm here for you - "

	EntityNoticePrefix = " (I noticed: "
	EntityNoticeSuffix = ")"
)

// Sentiment bucketing thresholds
const (
	positivePolarityMin = 0.3
	negativePolarityMax = -0.3
)
