package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"sync"
	"time"

	"laplante/coach-app/internal/advice"
	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/observability"
	"laplante/coach-app/internal/state"
	"laplante/coach-app/internal/storage"
	"laplante/coach-app/internal/upload"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrNotLoggedIn  = errors.New("no user is logged in")
	ErrNotPermitted = errors.New("operation not permitted for the current user")
)

// DefaultAdviceTimeout bounds a single advice call.
const DefaultAdviceTimeout = 15 * time.Second

// AdviceGenerator is the external text generator. Implementations never
// fail; they fall back to fixed text instead.
type AdviceGenerator interface {
	WorkoutAdvice(ctx context.Context, metrics []domain.Metric) string
	MealIdea(ctx context.Context, goal string) string
}

// --- Service Interface ---
type CoachingService interface {
	Snapshot() domain.AppState

	// Session
	SelectRole(role domain.Role) (domain.AppState, error)
	Logout() (domain.AppState, error)
	SelectClient(clientID string) (domain.AppState, error)

	// Workouts
	ToggleExercise(clientID, workoutID, exerciseID string) (domain.AppState, error)
	LogSet(clientID, workoutID, exerciseID string, weight float64, reps int) (domain.AppState, error)

	// Metrics
	RecordWeight(userID, rawWeight string) (domain.AppState, error)

	// Branding
	UpdateBusinessConfig(update domain.BusinessConfigUpdate) (domain.AppState, error)
	SetLogo(dataURI string) (domain.AppState, error)
	UploadLogo(r io.Reader) (domain.AppState, error)
	ImportLogo(ctx context.Context, objects storage.ObjectStore, key string) (domain.AppState, error)

	// Chat
	SendMessage(senderID, receiverID, text string) (domain.AppState, error)
	SendFromCurrentUser(text string) (domain.AppState, error)
	Conversation(viewerID string) []domain.ChatMessage

	// Advice
	RefreshAdvice() (domain.Advice, error)
	MealIdea(ctx context.Context, goal string) string

	Undo() (domain.AppState, error)
	// Wait blocks until in-flight advice requests have been applied or dropped.
	Wait()
	// Close cancels in-flight advice requests and waits for them.
	Close()
}

// --- Service Implementation ---

type coachingService struct {
	store         *state.Store
	generator     AdviceGenerator
	now           func() time.Time
	newID         func() string
	adviceTimeout time.Duration
	maxLogoBytes  int64

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Option configures the coaching service.
type Option func(*coachingService)

// WithClock overrides the time source used for metric dates and message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *coachingService) { s.now = now }
}

// WithIDGenerator overrides how chat message IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(s *coachingService) { s.newID = newID }
}

func WithAdviceTimeout(d time.Duration) Option {
	return func(s *coachingService) {
		if d > 0 {
			s.adviceTimeout = d
		}
	}
}

// WithMaxLogoBytes lowers the upload limit; it can never exceed domain.MaxLogoBytes.
func WithMaxLogoBytes(n int64) Option {
	return func(s *coachingService) {
		if n > 0 && n <= domain.MaxLogoBytes {
			s.maxLogoBytes = n
		}
	}
}

// NewCoachingService creates the service around store.
func NewCoachingService(store *state.Store, generator AdviceGenerator, opts ...Option) CoachingService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &coachingService{
		store:         store,
		generator:     generator,
		now:           time.Now,
		newID:         uuid.NewString,
		adviceTimeout: DefaultAdviceTimeout,
		maxLogoBytes:  domain.MaxLogoBytes,
		baseCtx:       ctx,
		cancel:        cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *coachingService) dispatch(name string, t state.Transition) (domain.AppState, error) {
	snap, err := s.store.Dispatch(name, t)
	if err != nil {
		log.Printf("INFO: %s rejected: %v", name, err)
	}
	return snap, err
}

func (s *coachingService) Snapshot() domain.AppState {
	return s.store.Snapshot()
}

// === Session ===

// SelectRole logs in as the admin or the first client. A client with
// metric history gets fresh advice.
func (s *coachingService) SelectRole(role domain.Role) (domain.AppState, error) {
	snap, err := s.dispatch("selectRole", func(st domain.AppState) (domain.AppState, error) {
		return state.SelectRole(st, role)
	})
	if err != nil {
		return snap, err
	}
	if _, ok := s.requestAdvice(clientWithMetrics); ok {
		snap = s.store.Snapshot()
	}
	return snap, nil
}

// clientWithMetrics targets the current user when they are a client with
// metric history.
func clientWithMetrics(st domain.AppState) (string, bool) {
	user := st.CurrentUser()
	if user == nil || !user.IsClient() || len(st.Metrics[user.ID]) == 0 {
		return "", false
	}
	return user.ID, true
}

func (s *coachingService) Logout() (domain.AppState, error) {
	return s.dispatch("logout", state.Logout)
}

func (s *coachingService) SelectClient(clientID string) (domain.AppState, error) {
	return s.dispatch("selectClient", func(st domain.AppState) (domain.AppState, error) {
		return state.SelectClient(st, clientID)
	})
}

// === Workouts ===

func (s *coachingService) ToggleExercise(clientID, workoutID, exerciseID string) (domain.AppState, error) {
	return s.dispatch("toggleExerciseCompletion", func(st domain.AppState) (domain.AppState, error) {
		return state.ToggleExerciseCompletion(st, clientID, workoutID, exerciseID)
	})
}

func (s *coachingService) LogSet(clientID, workoutID, exerciseID string, weight float64, reps int) (domain.AppState, error) {
	return s.dispatch("logSet", func(st domain.AppState) (domain.AppState, error) {
		return state.LogSet(st, clientID, workoutID, exerciseID, weight, reps)
	})
}

// === Metrics ===

// RecordWeight parses rawWeight and appends a weigh-in for userID. Someone
// must be logged in: clients record their own weight, the coach may record
// anyone's. When the current client records their own weight, their advice
// is refreshed.
func (s *coachingService) RecordWeight(userID, rawWeight string) (domain.AppState, error) {
	weight, err := state.ParseWeight(rawWeight)
	if err != nil {
		return s.store.Snapshot(), err
	}
	at := s.now()
	snap, err := s.dispatch("recordWeight", func(st domain.AppState) (domain.AppState, error) {
		current := st.CurrentUser()
		if current == nil {
			return st, ErrNotLoggedIn
		}
		if !current.IsAdmin() && current.ID != userID {
			return st, fmt.Errorf("%w: %s cannot record weight for %s", ErrNotPermitted, current.ID, userID)
		}
		return state.RecordWeight(st, userID, weight, at)
	})
	if err != nil {
		return snap, err
	}
	_, ok := s.requestAdvice(func(st domain.AppState) (string, bool) {
		if user := st.CurrentUser(); user != nil && user.ID == userID && user.IsClient() {
			return userID, true
		}
		return "", false
	})
	if ok {
		snap = s.store.Snapshot()
	}
	return snap, nil
}

// === Branding ===

func (s *coachingService) UpdateBusinessConfig(update domain.BusinessConfigUpdate) (domain.AppState, error) {
	return s.dispatch("updateBusinessConfig", func(st domain.AppState) (domain.AppState, error) {
		return state.UpdateBusinessConfig(st, update)
	})
}

func (s *coachingService) SetLogo(dataURI string) (domain.AppState, error) {
	return s.dispatch("setLogo", func(st domain.AppState) (domain.AppState, error) {
		return state.SetLogo(st, dataURI)
	})
}

// UploadLogo encodes an uploaded image and installs it as the logo.
func (s *coachingService) UploadLogo(r io.Reader) (domain.AppState, error) {
	dataURI, err := upload.EncodeLogo(r, s.maxLogoBytes)
	if err != nil {
		log.Printf("INFO: Logo upload rejected: %v", err)
		return s.store.Snapshot(), err
	}
	return s.SetLogo(dataURI)
}

// ImportLogo fetches an image from object storage and installs it as the logo.
func (s *coachingService) ImportLogo(ctx context.Context, objects storage.ObjectStore, key string) (domain.AppState, error) {
	obj, err := objects.GetObject(ctx, key, s.maxLogoBytes)
	if err != nil {
		if errors.Is(err, storage.ErrObjectTooLarge) {
			return s.store.Snapshot(), fmt.Errorf("%w: %v", upload.ErrTooLarge, err)
		}
		return s.store.Snapshot(), err
	}
	dataURI, err := upload.EncodeImage(obj.Body)
	if err != nil {
		return s.store.Snapshot(), err
	}
	return s.SetLogo(dataURI)
}

// === Chat ===

func (s *coachingService) SendMessage(senderID, receiverID, text string) (domain.AppState, error) {
	id, at := s.newID(), s.now()
	return s.dispatch("sendMessage", func(st domain.AppState) (domain.AppState, error) {
		return state.SendMessage(st, id, senderID, receiverID, text, at)
	})
}

// SendFromCurrentUser sends text from the logged-in user. Clients write to
// the coach; the coach writes to the selected client.
func (s *coachingService) SendFromCurrentUser(text string) (domain.AppState, error) {
	id, at := s.newID(), s.now()
	return s.dispatch("sendMessage", func(st domain.AppState) (domain.AppState, error) {
		if st.CurrentUserID == "" {
			return st, ErrNotLoggedIn
		}
		receiverID, err := state.ReceiverFor(st, st.CurrentUserID)
		if err != nil {
			return st, err
		}
		return state.SendMessage(st, id, st.CurrentUserID, receiverID, text, at)
	})
}

func (s *coachingService) Conversation(viewerID string) []domain.ChatMessage {
	var out []domain.ChatMessage
	s.store.Read(func(st domain.AppState) {
		out = state.Conversation(st, viewerID)
	})
	return out
}

// === Advice ===

// RefreshAdvice requests new advice for the current user and returns the
// pending advice immediately.
func (s *coachingService) RefreshAdvice() (domain.Advice, error) {
	pending, ok := s.requestAdvice(func(st domain.AppState) (string, bool) {
		return st.CurrentUserID, st.CurrentUserID != ""
	})
	if !ok {
		return domain.Advice{}, ErrNotLoggedIn
	}
	return pending, nil
}

// requestAdvice resolves the advice target with the store locked, issues a
// new advice tag, shows the default text and calls the generator in the
// background. The response is applied only if no newer request was issued
// in the meantime. It reports false, changing nothing, when target finds no
// user.
func (s *coachingService) requestAdvice(target func(domain.AppState) (string, bool)) (domain.Advice, bool) {
	var (
		userID     string
		generation uint64
		metrics    []domain.Metric
	)
	snap, _ := s.store.Dispatch("requestAdvice", func(st domain.AppState) (domain.AppState, error) {
		id, ok := target(st)
		if !ok {
			return st, nil
		}
		next, gen := state.RequestAdvice(st, id, advice.DefaultAdvice)
		userID, generation = id, gen
		metrics = slices.Clone(st.Metrics[id])
		return next, nil
	})
	if generation == 0 {
		return domain.Advice{}, false
	}

	s.wg.Add(1)
	observability.AdviceStarted()
	go func() {
		defer s.wg.Done()
		defer observability.AdviceFinished()

		ctx, cancel := context.WithTimeout(s.baseCtx, s.adviceTimeout)
		defer cancel()
		text := s.generator.WorkoutAdvice(ctx, metrics)

		_, err := s.store.Dispatch("applyAdvice", func(st domain.AppState) (domain.AppState, error) {
			return state.ApplyAdvice(st, generation, text)
		})
		if errors.Is(err, state.ErrStaleAdvice) {
			observability.RecordAdvice(observability.AdviceStale)
			log.Printf("INFO: Dropped advice for %s: %v", userID, err)
		}
	}()
	return snap.Advice, true
}

// MealIdea asks the generator for a one-sentence meal suggestion.
func (s *coachingService) MealIdea(ctx context.Context, goal string) string {
	ctx, cancel := context.WithTimeout(ctx, s.adviceTimeout)
	defer cancel()
	return s.generator.MealIdea(ctx, goal)
}

func (s *coachingService) Undo() (domain.AppState, error) {
	return s.store.Undo()
}

func (s *coachingService) Wait() {
	s.wg.Wait()
}

func (s *coachingService) Close() {
	s.cancel()
	s.wg.Wait()
}
