package domain

// PaymentDetails is transient card input. It is never persisted and is
// zeroed after every charge attempt, success or failure.
type PaymentDetails struct {
	CardName   string
	CardNumber string
	Expiry     string // MM/YY
	CVV        string
}

func (d *PaymentDetails) Zero() {
	d.CardName = ""
	d.CardNumber = ""
	d.Expiry = ""
	d.CVV = ""
}

// ChatMessage is one line of a chat transcript.
type ChatMessage struct {
	Role    string // user | system
	Content string
}
