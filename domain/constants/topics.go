package constants

const (
	// TopicVerification carries every verification outcome for the order service
	TopicVerification = "pagomovil.verification"
	// QueueVerifyRequest is the storefront intake for deferred verification
	QueueVerifyRequest = "pagomovil.verify.request"
)

const (
	ChannelHTTP  = "HTTP"
	ChannelQueue = "QUEUE"
)
