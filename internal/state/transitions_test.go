package state

import (
	"encoding/base64"
	"math"
	"testing"
	"time"

	"laplante/coach-app/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSelectRole(t *testing.T) {
	s := testState()

	next, err := SelectRole(s, domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "admin-1", next.CurrentUserID)

	next, err = SelectRole(s, domain.RoleClient)
	require.NoError(t, err)
	require.Equal(t, "c-1", next.CurrentUserID)
	require.Empty(t, s.CurrentUserID, "input snapshot must not change")
}

func TestSelectRoleWithoutSeedUserIsNoOp(t *testing.T) {
	s := testState()
	s.Clients = nil

	next, err := SelectRole(s, domain.RoleClient)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, s, next)

	next, err = SelectRole(s, domain.Role("COACH"))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, s, next)
}

func TestLogoutClearsSessionAndInvalidatesAdvice(t *testing.T) {
	s := testState()
	s.CurrentUserID = "admin-1"
	s.SelectedClientID = "c-2"
	s, gen := RequestAdvice(s, "c-1", "pending")

	next, err := Logout(s)
	require.NoError(t, err)
	require.Empty(t, next.CurrentUserID)
	require.Empty(t, next.SelectedClientID)
	require.Empty(t, next.Advice.Text)

	_, err = ApplyAdvice(next, gen, "late answer")
	require.ErrorIs(t, err, ErrStaleAdvice)
}

func TestSelectClient(t *testing.T) {
	s := testState()

	next, err := SelectClient(s, "c-2")
	require.NoError(t, err)
	require.Equal(t, "c-2", next.SelectedClientID)

	cleared, err := SelectClient(next, "")
	require.NoError(t, err)
	require.Empty(t, cleared.SelectedClientID)

	unchanged, err := SelectClient(next, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, next, unchanged)
}

func TestWorkoutCompletedIffAllExercisesCompleted(t *testing.T) {
	s := testState()
	var err error

	s, err = ToggleExerciseCompletion(s, "c-1", "w-1", "e-1")
	require.NoError(t, err)
	s, err = ToggleExerciseCompletion(s, "c-1", "w-1", "e-2")
	require.NoError(t, err)
	require.False(t, workout(s, "c-1", "w-1").IsCompleted)
	require.Equal(t, domain.StatusInProgress, todayStatus(s, "c-1"))

	s, err = ToggleExerciseCompletion(s, "c-1", "w-1", "e-3")
	require.NoError(t, err)
	require.True(t, workout(s, "c-1", "w-1").IsCompleted)
	require.Equal(t, domain.StatusCompleted, todayStatus(s, "c-1"))
}

func TestToggleTwiceRestoresExercise(t *testing.T) {
	s := testState()
	s, err := ToggleExerciseCompletion(s, "c-1", "w-1", "e-1")
	require.NoError(t, err)
	before := s

	once, err := ToggleExerciseCompletion(before, "c-1", "w-1", "e-2")
	require.NoError(t, err)
	require.True(t, exercise(once, "c-1", "w-1", "e-2").Completed)

	twice, err := ToggleExerciseCompletion(once, "c-1", "w-1", "e-2")
	require.NoError(t, err)
	require.False(t, exercise(twice, "c-1", "w-1", "e-2").Completed)
	require.False(t, workout(twice, "c-1", "w-1").IsCompleted)
	require.Equal(t, domain.StatusInProgress, todayStatus(twice, "c-1"))
	require.Equal(t, before, twice)
}

func TestTodayStatusResetsWhenNothingCompleted(t *testing.T) {
	s := testState()
	s, err := ToggleExerciseCompletion(s, "c-1", "w-1", "e-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, todayStatus(s, "c-1"))

	s, err = ToggleExerciseCompletion(s, "c-1", "w-1", "e-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusNotStarted, todayStatus(s, "c-1"))
}

func TestToggleUnknownIDsAreNoOps(t *testing.T) {
	cases := []struct {
		name                            string
		clientID, workoutID, exerciseID string
	}{
		{"unknown workout", "c-1", "nonexistent-workout", "e-1"},
		{"unknown exercise", "c-1", "w-1", "nonexistent-exercise"},
		{"client without workouts", "c-2", "w-1", "e-1"},
		{"unknown client", "nobody", "w-1", "e-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testState()
			next, err := ToggleExerciseCompletion(s, tc.clientID, tc.workoutID, tc.exerciseID)
			require.ErrorIs(t, err, ErrNotFound)
			require.Equal(t, testState(), next)
		})
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	s := testState()
	_, err := ToggleExerciseCompletion(s, "c-1", "w-1", "e-1")
	require.NoError(t, err)
	require.Equal(t, testState(), s)
}

func TestLogSetCompletesAtPrescribedCount(t *testing.T) {
	s := testState()
	var err error

	s, err = LogSet(s, "c-1", "w-1", "e-1", 50, 10)
	require.NoError(t, err)
	s, err = LogSet(s, "c-1", "w-1", "e-1", 55, 8)
	require.NoError(t, err)
	require.False(t, exercise(s, "c-1", "w-1", "e-1").Completed)
	require.Equal(t, domain.StatusInProgress, todayStatus(s, "c-1"))

	s, err = LogSet(s, "c-1", "w-1", "e-1", 60, 6)
	require.NoError(t, err)
	ex := exercise(s, "c-1", "w-1", "e-1")
	require.True(t, ex.Completed)
	require.Equal(t, []domain.LoggedSet{{Weight: 50, Reps: 10}, {Weight: 55, Reps: 8}, {Weight: 60, Reps: 6}}, ex.LoggedSets)
	require.Equal(t, domain.StatusInProgress, todayStatus(s, "c-1"))

	s, err = LogSet(s, "c-1", "w-1", "e-1", 60, 5)
	require.NoError(t, err)
	require.True(t, exercise(s, "c-1", "w-1", "e-1").Completed)
	require.Len(t, exercise(s, "c-1", "w-1", "e-1").LoggedSets, 4)
}

func TestLogSetNeverClearsCompleted(t *testing.T) {
	s := testState()
	s, err := ToggleExerciseCompletion(s, "c-1", "w-1", "e-2")
	require.NoError(t, err)

	s, err = LogSet(s, "c-1", "w-1", "e-2", 40, 12)
	require.NoError(t, err)
	require.True(t, exercise(s, "c-1", "w-1", "e-2").Completed)
}

func TestLogSetSharesNothingWithPriorSnapshot(t *testing.T) {
	s := testState()
	first, err := LogSet(s, "c-1", "w-1", "e-1", 50, 10)
	require.NoError(t, err)
	second, err := LogSet(first, "c-1", "w-1", "e-1", 55, 8)
	require.NoError(t, err)

	require.Empty(t, exercise(s, "c-1", "w-1", "e-1").LoggedSets)
	require.Len(t, exercise(first, "c-1", "w-1", "e-1").LoggedSets, 1)
	require.Len(t, exercise(second, "c-1", "w-1", "e-1").LoggedSets, 2)
}

func TestLogSetRejectsInvalidInput(t *testing.T) {
	for name, in := range map[string]struct {
		weight float64
		reps   int
	}{
		"NaN weight":      {math.NaN(), 5},
		"infinite weight": {math.Inf(1), 5},
		"negative weight": {-1, 5},
		"negative reps":   {20, -1},
	} {
		t.Run(name, func(t *testing.T) {
			s := testState()
			next, err := LogSet(s, "c-1", "w-1", "e-1", in.weight, in.reps)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Equal(t, testState(), next)
		})
	}

	s := testState()
	next, err := LogSet(s, "c-1", "w-9", "e-1", 20, 5)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, s, next)
}

func TestRecordWeightIsAppendOnly(t *testing.T) {
	s := testState()
	prior := s.Metrics["c-1"]
	at := time.Date(2025, time.March, 4, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	s, err := RecordWeight(s, "c-1", 81.5, at)
	require.NoError(t, err)
	s, err = RecordWeight(s, "c-1", 81.0, at.Add(24*time.Hour))
	require.NoError(t, err)

	got := s.Metrics["c-1"]
	require.Len(t, got, len(prior)+2)
	require.Equal(t, prior, got[:len(prior)])
	require.Equal(t, "2025-03-05", got[1].Date)
	require.Equal(t, 81.5, got[1].Weight)
	require.Equal(t, float64(DefaultStrengthScore), got[1].StrengthScore)
	require.NotNil(t, got[1].Energy)
	require.Equal(t, DefaultEnergy, *got[1].Energy)
	require.Equal(t, "2025-03-06", got[2].Date)
	require.Equal(t, 81.0, got[2].Weight)
}

func TestRecordWeightForUserWithoutHistory(t *testing.T) {
	s := testState()
	s.Metrics = nil

	next, err := RecordWeight(s, "admin-1", 90, time.Now())
	require.NoError(t, err)
	require.Len(t, next.Metrics["admin-1"], 1)
	require.Nil(t, s.Metrics)
}

func TestRecordWeightRejections(t *testing.T) {
	s := testState()

	next, err := RecordWeight(s, "", 80, time.Now())
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, s, next)

	next, err = RecordWeight(s, "nobody", 80, time.Now())
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, s, next)

	next, err = RecordWeight(s, "c-1", math.NaN(), time.Now())
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, testState(), next)
}

func TestParseWeight(t *testing.T) {
	v, err := ParseWeight(" 82.5 ")
	require.NoError(t, err)
	require.Equal(t, 82.5, v)

	for _, raw := range []string{"", "abc", "12kg", "NaN", "Inf", "-Inf"} {
		_, err := ParseWeight(raw)
		require.ErrorIs(t, err, ErrInvalidInput, raw)
	}
}

func TestUpdateBusinessConfigMergesPartially(t *testing.T) {
	s := testState()
	name := "X"

	next, err := UpdateBusinessConfig(s, domain.BusinessConfigUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "X", next.Config.Name)
	require.Equal(t, s.Config.LogoURL, next.Config.LogoURL)

	expected := s
	expected.Config.Name = "X"
	require.Equal(t, expected, next)
}

func TestUpdateBusinessConfigWithInvalidLogoRejectsWholeUpdate(t *testing.T) {
	s := testState()
	name, logo := "X", "https://example.com/logo.png"

	next, err := UpdateBusinessConfig(s, domain.BusinessConfigUpdate{Name: &name, LogoURL: &logo})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, s, next)
}

func TestSetLogo(t *testing.T) {
	s := testState()

	cleared, err := SetLogo(s, "")
	require.NoError(t, err)
	require.Empty(t, cleared.Config.LogoURL)
	require.Equal(t, s.Config.Name, cleared.Config.Name)

	restored, err := SetLogo(cleared, pngDataURI)
	require.NoError(t, err)
	require.Equal(t, pngDataURI, restored.Config.LogoURL)
}

func TestValidateLogo(t *testing.T) {
	atLimit := "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, domain.MaxLogoBytes))
	overLimit := "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, domain.MaxLogoBytes+1))
	farOverLimit := "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, domain.MaxLogoBytes+4096))

	require.NoError(t, ValidateLogo(""))
	require.NoError(t, ValidateLogo(pngDataURI))
	require.NoError(t, ValidateLogo(atLimit))
	require.NoError(t, ValidateLogo("data:image/png;name=logo.png;base64,"+base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})))
	require.ErrorIs(t, ValidateLogo(overLimit), ErrLogoTooLarge)
	require.ErrorIs(t, ValidateLogo(farOverLimit), ErrLogoTooLarge)

	for _, bad := range []string{
		"https://example.com/logo.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,raw-bytes",
		"data:image/png;base64,@@not-base64@@",
	} {
		require.ErrorIs(t, ValidateLogo(bad), ErrInvalidInput, bad)
	}
}

func TestSendMessage(t *testing.T) {
	s := testState()
	at := time.UnixMilli(1_700_000_000_000)

	next, err := SendMessage(s, "m-1", "c-1", "admin-1", "  hi coach ", at)
	require.NoError(t, err)
	require.Len(t, next.Messages, 1)
	require.Equal(t, domain.ChatMessage{
		ID:         "m-1",
		SenderID:   "c-1",
		ReceiverID: "admin-1",
		Text:       "  hi coach ",
		Timestamp:  1_700_000_000_000,
	}, next.Messages[0])
	require.Empty(t, s.Messages)
}

func TestSendBlankMessageIsNoOp(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		s := testState()
		next, err := SendMessage(s, "m-1", "c-1", "admin-1", text, time.Now())
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Len(t, next.Messages, len(s.Messages))
		require.Equal(t, s, next)
	}
}

func TestSendMessageRejectsUnknownUsersAndReusedIDs(t *testing.T) {
	s := testState()
	s, err := SendMessage(s, "m-1", "c-1", "admin-1", "hello", time.Now())
	require.NoError(t, err)

	_, err = SendMessage(s, "m-1", "admin-1", "c-1", "again", time.Now())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = SendMessage(s, "", "admin-1", "c-1", "no id", time.Now())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = SendMessage(s, "m-2", "ghost", "c-1", "boo", time.Now())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = SendMessage(s, "m-2", "c-1", "ghost", "boo", time.Now())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdviceGenerations(t *testing.T) {
	s := testState()

	s, first := RequestAdvice(s, "c-1", "pending")
	require.Equal(t, uint64(1), first)
	require.Equal(t, "pending", s.Advice.Text)
	require.Equal(t, "c-1", s.Advice.UserID)

	s, second := RequestAdvice(s, "c-1", "pending")
	require.Equal(t, uint64(2), second)

	stale, err := ApplyAdvice(s, first, "old answer")
	require.ErrorIs(t, err, ErrStaleAdvice)
	require.Equal(t, s, stale)

	fresh, err := ApplyAdvice(s, second, "new answer")
	require.NoError(t, err)
	require.Equal(t, "new answer", fresh.Advice.Text)
	require.Equal(t, second, fresh.Advice.Generation)
}

func TestDeriveTodayStatus(t *testing.T) {
	require.Equal(t, domain.StatusCompleted, DeriveTodayStatus(domain.Workout{IsCompleted: true}))
	require.Equal(t, domain.StatusInProgress, DeriveTodayStatus(domain.Workout{
		Exercises: []domain.Exercise{{Completed: true}, {}},
	}))
	require.Equal(t, domain.StatusInProgress, DeriveTodayStatus(domain.Workout{
		Exercises: []domain.Exercise{{LoggedSets: []domain.LoggedSet{{Weight: 40, Reps: 12}}}, {}},
	}))
	require.Equal(t, domain.StatusNotStarted, DeriveTodayStatus(domain.Workout{
		Exercises: []domain.Exercise{{}, {}},
	}))
}

func TestFirstLoggedSetMovesSeededClientToInProgress(t *testing.T) {
	s := testState()
	s.Clients[0].TodayStatus = domain.StatusCompleted

	next, err := LogSet(s, "c-1", "w-1", "e-1", 100, 8)
	require.NoError(t, err)
	require.Len(t, exercise(next, "c-1", "w-1", "e-1").LoggedSets, 1)
	require.Equal(t, domain.StatusInProgress, todayStatus(next, "c-1"))
}
