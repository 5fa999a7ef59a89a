package state

import (
	"fmt"

	"laplante/coach-app/internal/domain"
)

// Conversation returns every message the viewer sent or received, oldest first.
func Conversation(s domain.AppState, viewerID string) []domain.ChatMessage {
	out := []domain.ChatMessage{}
	for _, m := range s.Messages {
		if m.Involves(viewerID) {
			out = append(out, m)
		}
	}
	return out
}

// Thread returns the messages exchanged between a and b, oldest first.
func Thread(s domain.AppState, a, b string) []domain.ChatMessage {
	out := []domain.ChatMessage{}
	for _, m := range s.Messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out
}

// ReceiverFor picks who a message from senderID goes to: clients write to
// the coach; the coach writes to the selected client, or the first client
// on the roster when none is selected.
func ReceiverFor(s domain.AppState, senderID string) (string, error) {
	sender, ok := s.FindUser(senderID)
	if !ok {
		return "", fmt.Errorf("%w: sender %q", ErrNotFound, senderID)
	}
	if sender.IsClient() {
		if s.Admin.ID == "" {
			return "", fmt.Errorf("%w: no admin user", ErrNotFound)
		}
		return s.Admin.ID, nil
	}
	if s.SelectedClientID != "" {
		return s.SelectedClientID, nil
	}
	if len(s.Clients) == 0 {
		return "", fmt.Errorf("%w: client roster is empty", ErrNotFound)
	}
	return s.Clients[0].ID, nil
}

// LatestMetric returns the most recently recorded metric for the user.
func LatestMetric(s domain.AppState, userID string) (domain.Metric, bool) {
	ms := s.Metrics[userID]
	if len(ms) == 0 {
		return domain.Metric{}, false
	}
	return ms[len(ms)-1], true
}

// CurrentWorkout returns the client's first workout, the one shown on the
// client's dashboard.
func CurrentWorkout(s domain.AppState, clientID string) (domain.Workout, bool) {
	ws := s.Workouts[clientID]
	if len(ws) == 0 {
		return domain.Workout{}, false
	}
	return ws[0], true
}
