package domain

// ChatMessage is a single message between two users. There is no thread
// entity: a message belongs to the conversation of both of its endpoints.
type ChatMessage struct {
	ID         string `bson:"id" json:"id"`
	SenderID   string `bson:"senderId" json:"senderId"`
	ReceiverID string `bson:"receiverId" json:"receiverId"`
	Text       string `bson:"text" json:"text"`
	Timestamp  int64  `bson:"timestamp" json:"timestamp"` // Unix milliseconds
}

// Involves reports whether userID is the sender or receiver of the message.
func (m *ChatMessage) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
