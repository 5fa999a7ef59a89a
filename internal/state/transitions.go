// Package state holds the application state transitions.
//
// Every transition is a pure function from a snapshot (plus input) to a new
// snapshot. Slices and maps that change are copied; everything else is
// shared with the input. On error the input snapshot is returned as is, so a
// transition is never partially applied.
package state

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"laplante/coach-app/internal/domain"
)

// DateLayout is the calendar-day format used for metrics and workouts.
const DateLayout = "2006-01-02"

// Placeholder values for metrics recorded from a bare weigh-in.
const (
	DefaultStrengthScore = 100
	DefaultEnergy        = 8
)

// Transition is the shape every state change takes.
type Transition func(domain.AppState) (domain.AppState, error)

// === Session ===

// SelectRole makes the admin, or the first client on the roster, the current user.
func SelectRole(s domain.AppState, role domain.Role) (domain.AppState, error) {
	next := s
	switch role {
	case domain.RoleAdmin:
		if s.Admin.ID == "" {
			return s, fmt.Errorf("%w: no admin user", ErrNotFound)
		}
		next.CurrentUserID = s.Admin.ID
	case domain.RoleClient:
		if len(s.Clients) == 0 {
			return s, fmt.Errorf("%w: client roster is empty", ErrNotFound)
		}
		next.CurrentUserID = s.Clients[0].ID
	default:
		return s, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	return next, nil
}

// Logout clears the current user and the coach's client focus. Any advice
// request still in flight is invalidated.
func Logout(s domain.AppState) (domain.AppState, error) {
	next := s
	next.CurrentUserID = ""
	next.SelectedClientID = ""
	next.Advice = domain.Advice{Generation: s.Advice.Generation + 1}
	return next, nil
}

// SelectClient sets the coach's client focus. An empty ID clears it.
func SelectClient(s domain.AppState, clientID string) (domain.AppState, error) {
	if clientID != "" && s.ClientIndex(clientID) < 0 {
		return s, fmt.Errorf("%w: client %q", ErrNotFound, clientID)
	}
	next := s
	next.SelectedClientID = clientID
	return next, nil
}

// === Workouts ===

// ToggleExerciseCompletion flips the completed flag of one exercise and
// recomputes the workout's and the client's derived status.
func ToggleExerciseCompletion(s domain.AppState, clientID, workoutID, exerciseID string) (domain.AppState, error) {
	return updateExercise(s, clientID, workoutID, exerciseID, func(ex *domain.Exercise) {
		ex.Completed = !ex.Completed
	})
}

// LogSet appends a performed set to an exercise. The exercise becomes
// completed once the logged count reaches the prescribed set count; an
// already completed exercise stays completed.
func LogSet(s domain.AppState, clientID, workoutID, exerciseID string, weight float64, reps int) (domain.AppState, error) {
	if !isFinite(weight) || weight < 0 {
		return s, fmt.Errorf("%w: weight must be a finite non-negative number", ErrInvalidInput)
	}
	if reps < 0 {
		return s, fmt.Errorf("%w: reps must be non-negative", ErrInvalidInput)
	}
	return updateExercise(s, clientID, workoutID, exerciseID, func(ex *domain.Exercise) {
		ex.LoggedSets = append(slices.Clip(ex.LoggedSets), domain.LoggedSet{Weight: weight, Reps: reps})
		if len(ex.LoggedSets) >= ex.Sets {
			ex.Completed = true
		}
	})
}

func updateExercise(s domain.AppState, clientID, workoutID, exerciseID string, mutate func(*domain.Exercise)) (domain.AppState, error) {
	workouts := s.Workouts[clientID]
	if len(workouts) == 0 {
		return s, fmt.Errorf("%w: no workouts for client %q", ErrNotFound, clientID)
	}
	wi := slices.IndexFunc(workouts, func(w domain.Workout) bool { return w.ID == workoutID })
	if wi < 0 {
		return s, fmt.Errorf("%w: workout %q", ErrNotFound, workoutID)
	}
	ei := slices.IndexFunc(workouts[wi].Exercises, func(e domain.Exercise) bool { return e.ID == exerciseID })
	if ei < 0 {
		return s, fmt.Errorf("%w: exercise %q", ErrNotFound, exerciseID)
	}

	workout := workouts[wi]
	workout.Exercises = slices.Clone(workout.Exercises)
	mutate(&workout.Exercises[ei])
	workout.IsCompleted = workout.AllExercisesCompleted()

	nextWorkouts := slices.Clone(workouts)
	nextWorkouts[wi] = workout

	next := s
	next.Workouts = maps.Clone(s.Workouts)
	next.Workouts[clientID] = nextWorkouts
	next.Clients = withTodayStatus(s.Clients, clientID, DeriveTodayStatus(workout))
	return next, nil
}

// DeriveTodayStatus maps workout progress to the roster status: Completed
// when every exercise is done, In Progress once anything is completed or
// logged, Not Started otherwise.
func DeriveTodayStatus(w domain.Workout) domain.TodayStatus {
	switch {
	case w.IsCompleted:
		return domain.StatusCompleted
	case w.AnyExerciseCompleted(), w.AnySetLogged():
		return domain.StatusInProgress
	default:
		return domain.StatusNotStarted
	}
}

func withTodayStatus(clients []domain.User, clientID string, status domain.TodayStatus) []domain.User {
	i := slices.IndexFunc(clients, func(u domain.User) bool { return u.ID == clientID })
	if i < 0 || clients[i].TodayStatus == status {
		return clients
	}
	out := slices.Clone(clients)
	out[i].TodayStatus = status
	return out
}

// === Metrics ===

// ParseWeight parses user-entered weight text.
func ParseWeight(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !isFinite(v) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	return v, nil
}

// RecordWeight appends a weigh-in dated at's calendar day (UTC) to the
// user's metric history. History is append-only.
func RecordWeight(s domain.AppState, userID string, weight float64, at time.Time) (domain.AppState, error) {
	if _, ok := s.FindUser(userID); !ok {
		return s, fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}
	if !isFinite(weight) || weight < 0 {
		return s, fmt.Errorf("%w: weight must be a finite non-negative number", ErrInvalidInput)
	}

	energy := DefaultEnergy
	metric := domain.Metric{
		Date:          at.UTC().Format(DateLayout),
		Weight:        weight,
		StrengthScore: DefaultStrengthScore,
		Energy:        &energy,
	}

	next := s
	next.Metrics = cloneOrMake(s.Metrics)
	next.Metrics[userID] = append(slices.Clip(s.Metrics[userID]), metric)
	return next, nil
}

// === Business config ===

// UpdateBusinessConfig merges the non-nil fields of u into the config.
// A rejected logo rejects the whole update.
func UpdateBusinessConfig(s domain.AppState, u domain.BusinessConfigUpdate) (domain.AppState, error) {
	cfg := s.Config
	if u.Name != nil {
		cfg.Name = *u.Name
	}
	if u.LogoURL != nil {
		if err := ValidateLogo(*u.LogoURL); err != nil {
			return s, err
		}
		cfg.LogoURL = *u.LogoURL
	}
	next := s
	next.Config = cfg
	return next, nil
}

// SetLogo replaces the logo. An empty dataURI removes it.
func SetLogo(s domain.AppState, dataURI string) (domain.AppState, error) {
	return UpdateBusinessConfig(s, domain.BusinessConfigUpdate{LogoURL: &dataURI})
}

// === Messages ===

// SendMessage appends a chat message. Whitespace-only text is rejected and
// both endpoints must be known users.
func SendMessage(s domain.AppState, id, senderID, receiverID, text string, at time.Time) (domain.AppState, error) {
	if strings.TrimSpace(text) == "" {
		return s, fmt.Errorf("%w: message text is empty", ErrInvalidInput)
	}
	if id == "" || slices.ContainsFunc(s.Messages, func(m domain.ChatMessage) bool { return m.ID == id }) {
		return s, fmt.Errorf("%w: message id %q is empty or already used", ErrInvalidInput, id)
	}
	if _, ok := s.FindUser(senderID); !ok {
		return s, fmt.Errorf("%w: sender %q", ErrNotFound, senderID)
	}
	if _, ok := s.FindUser(receiverID); !ok {
		return s, fmt.Errorf("%w: receiver %q", ErrNotFound, receiverID)
	}

	msg := domain.ChatMessage{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Timestamp:  at.UnixMilli(),
	}
	next := s
	next.Messages = append(slices.Clip(s.Messages), msg)
	return next, nil
}

// === Advice ===

// RequestAdvice issues a new advice tag for userID and shows pending text
// until a response for that tag arrives.
func RequestAdvice(s domain.AppState, userID, pending string) (domain.AppState, uint64) {
	next := s
	next.Advice = domain.Advice{
		UserID:     userID,
		Text:       pending,
		Generation: s.Advice.Generation + 1,
	}
	return next, next.Advice.Generation
}

// ApplyAdvice sets the advice text if generation is still the latest tag issued.
func ApplyAdvice(s domain.AppState, generation uint64, text string) (domain.AppState, error) {
	if generation != s.Advice.Generation {
		return s, fmt.Errorf("%w: got %d, latest is %d", ErrStaleAdvice, generation, s.Advice.Generation)
	}
	next := s
	next.Advice.Text = text
	return next, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func cloneOrMake[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	return maps.Clone(m)
}
