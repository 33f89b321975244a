package messages

const (
	BotNotConfigured   = "bot credentials not configured"
	CooldownActive     = "please wait a bit before rating again"
	FiltersNotNil      = "filters can't be nil"
	MissingAuthCode    = "missing authorization code"
	MissingRatingData  = "missing rating data"
	NotesTooLong       = "notes must be at most 500 characters"
	MissingTargetUser  = "missing target user"
	MissingUserId      = "missing userId"
	SenderNotFound     = "sender not found"
	StarsOutOfRange    = "stars must be between 1 and 5"
	TargetNotFound     = "target not found"
	Unauthorized       = "unauthorized"
	UpstreamChannelMsg = "discord channel error: %s"
	UserNotFound       = "user not found"
)
