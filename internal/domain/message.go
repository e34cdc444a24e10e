package domain

// SMS is an outbound text message.
type SMS struct {
	To   string
	Body string
}

// Email is an outbound plain-text email.
type Email struct {
	To      string
	Subject string
	Text    string
}

// Push is an outbound push notification addressed to one device token.
type Push struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
