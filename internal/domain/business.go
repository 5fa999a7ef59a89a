package domain

// MaxLogoBytes caps the decoded size of an uploaded logo (2 MiB).
const MaxLogoBytes = 2 << 20

// BusinessConfig is the process-wide branding for the coaching business.
type BusinessConfig struct {
	Name    string `bson:"name" json:"name"`
	LogoURL string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"` // data: URI, never a remote reference
}

// BusinessConfigUpdate is a partial update; nil fields are left untouched.
// A non-nil empty LogoURL clears the logo.
type BusinessConfigUpdate struct {
	Name    *string `json:"name,omitempty"`
	LogoURL *string `json:"logoUrl,omitempty"`
}

// Advice is the coaching blurb shown to a client along with the tag of the
// most recent request issued for it.
type Advice struct {
	UserID     string `json:"userId,omitempty"`
	Text       string `json:"text"`
	Generation uint64 `json:"generation"`
}
