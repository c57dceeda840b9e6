package generate

import "fmt"

const (
	mockReplyGeneric = "Mock AI reply: Thanks for your message. Maintain oral hygiene and book a follow-up if symptoms persist."
	mockReplyNotes   = "Mock AI reply: Thanks for sharing. Continue daily brushing and flossing. " +
		"Given your notes (%s), if pain or swelling continues, contact the clinic."
)

// MockReply is the local responder: no I/O, never fails, same input gives
// the same output. Notes are interpolated as given.
func MockReply(req Request) string {
	if notes := req.PatientContext.Notes(); notes != "" {
		return fmt.Sprintf(mockReplyNotes, notes)
	}
	return mockReplyGeneric
}
