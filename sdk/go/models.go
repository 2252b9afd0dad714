package adsmedia

// Response is the decoded JSON object returned by the API. Its shape is
// owned by the remote service; numbers are kept as json.Number.
type Response map[string]interface{}

// SendEmailRequest describes a single transactional email.
type SendEmailRequest struct {
	To       string `json:"to"`
	ToName   string `json:"to_name,omitempty"`
	Subject  string `json:"subject"`
	HTML     string `json:"html,omitempty"`
	Text     string `json:"text,omitempty"`
	FromName string `json:"from_name,omitempty"`
	ReplyTo  string `json:"reply_to,omitempty"`
}

// Recipient is a single addressee of a batch send.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// BatchEmailRequest sends the same content to a list of recipients.
type BatchEmailRequest struct {
	Recipients []Recipient `json:"recipients"`
	Subject    string      `json:"subject"`
	HTML       string      `json:"html,omitempty"`
	Text       string      `json:"text,omitempty"`
	Preheader  string      `json:"preheader,omitempty"`
	FromName   string      `json:"from_name,omitempty"`
}

// StatusQuery identifies a sent message by either of its identifiers.
// Zero values mean unset and are not sent; the API never issues a send ID
// of 0.
type StatusQuery struct {
	MessageID string `json:"message_id,omitempty"`
	SendID    int64  `json:"send_id,omitempty"`
}
