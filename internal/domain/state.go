package domain

// AppState is the whole in-memory model of the application.
//
// Snapshots are treated as immutable values: transitions copy the parts
// they change and share the rest, so a snapshot handed out to a reader must
// not be modified in place. Use Clone when a caller needs its own copy.
type AppState struct {
	Admin            User                     `json:"admin"`
	CurrentUserID    string                   `json:"currentUserId,omitempty"`    // Admin.ID or a roster ID, empty when logged out
	SelectedClientID string                   `json:"selectedClientId,omitempty"` // Coach's client focus
	Clients          []User                   `json:"clients"`
	Workouts         map[string][]Workout     `json:"workouts"`  // Keyed by client ID
	Nutrition        map[string]NutritionPlan `json:"nutrition"` // Keyed by client ID
	Metrics          map[string][]Metric      `json:"metrics"`   // Keyed by user ID, chronological
	Messages         []ChatMessage            `json:"messages"`  // Chronological
	Tips             []Tip                    `json:"tips"`
	Config           BusinessConfig           `json:"config"`
	Advice           Advice                   `json:"advice"`
}

// CurrentUser resolves CurrentUserID against the admin record and the roster.
// The returned pointer is a copy; it returns nil when nobody is logged in.
func (s *AppState) CurrentUser() *User {
	if s.CurrentUserID == "" {
		return nil
	}
	u, ok := s.FindUser(s.CurrentUserID)
	if !ok {
		return nil
	}
	return &u
}

// FindUser looks a user up by ID, the admin included.
func (s *AppState) FindUser(id string) (User, bool) {
	if id == "" {
		return User{}, false
	}
	if s.Admin.ID == id {
		return s.Admin, true
	}
	if i := s.ClientIndex(id); i >= 0 {
		return s.Clients[i], true
	}
	return User{}, false
}

// ClientIndex returns the roster position of the client, or -1.
func (s *AppState) ClientIndex(id string) int {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the snapshot.
func (s AppState) Clone() AppState {
	out := s
	out.Clients = cloneSlice(s.Clients)
	out.Messages = cloneSlice(s.Messages)
	out.Tips = cloneSlice(s.Tips)

	if s.Workouts != nil {
		out.Workouts = make(map[string][]Workout, len(s.Workouts))
		for k, ws := range s.Workouts {
			out.Workouts[k] = cloneWorkouts(ws)
		}
	}
	if s.Nutrition != nil {
		out.Nutrition = make(map[string]NutritionPlan, len(s.Nutrition))
		for k, p := range s.Nutrition {
			p.Meals = cloneSlice(p.Meals)
			out.Nutrition[k] = p
		}
	}
	if s.Metrics != nil {
		out.Metrics = make(map[string][]Metric, len(s.Metrics))
		for k, ms := range s.Metrics {
			out.Metrics[k] = cloneMetrics(ms)
		}
	}
	return out
}

func cloneWorkouts(ws []Workout) []Workout {
	if ws == nil {
		return nil
	}
	out := make([]Workout, len(ws))
	for i, w := range ws {
		w.Exercises = cloneSlice(w.Exercises)
		for j := range w.Exercises {
			w.Exercises[j].LoggedSets = cloneSlice(w.Exercises[j].LoggedSets)
		}
		out[i] = w
	}
	return out
}

func cloneMetrics(ms []Metric) []Metric {
	if ms == nil {
		return nil
	}
	out := make([]Metric, len(ms))
	for i, m := range ms {
		if m.BodyFat != nil {
			v := *m.BodyFat
			m.BodyFat = &v
		}
		if m.Energy != nil {
			v := *m.Energy
			m.Energy = &v
		}
		out[i] = m
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
