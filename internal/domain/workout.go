package domain

// LoggedSet is one set actually performed by the client.
type LoggedSet struct {
	Weight float64 `bson:"weight" json:"weight"`
	Reps   int     `bson:"reps" json:"reps"`
}

// Exercise is a prescribed movement inside a Workout.
type Exercise struct {
	ID         string      `bson:"id" json:"id"`
	Name       string      `bson:"name" json:"name"`
	Sets       int         `bson:"sets" json:"sets"` // Prescribed set count
	Reps       string      `bson:"reps" json:"reps"` // Free-form, e.g. "8-10"
	Notes      string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Completed  bool        `bson:"completed" json:"completed"`
	LoggedSets []LoggedSet `bson:"loggedSets" json:"loggedSets"`
}

// Workout represents a single dated session assigned to one client.
type Workout struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Date        string     `bson:"date" json:"date"` // YYYY-MM-DD
	Exercises   []Exercise `bson:"exercises" json:"exercises"`
	IsCompleted bool       `bson:"isCompleted" json:"isCompleted"` // Derived: every exercise completed
}

// AllExercisesCompleted reports whether every exercise in the workout is completed.
// An empty workout counts as completed.
func (w *Workout) AllExercisesCompleted() bool {
	for _, ex := range w.Exercises {
		if !ex.Completed {
			return false
		}
	}
	return true
}

// AnySetLogged reports whether any set has been logged against the workout.
func (w *Workout) AnySetLogged() bool {
	for _, ex := range w.Exercises {
		if len(ex.LoggedSets) > 0 {
			return true
		}
	}
	return false
}

// AnyExerciseCompleted reports whether at least one exercise is completed.
func (w *Workout) AnyExerciseCompleted() bool {
	for _, ex := range w.Exercises {
		if ex.Completed {
			return true
		}
	}
	return false
}
