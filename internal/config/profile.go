package config

// Identity placeholder keys recognized in the resume and cover letter
// templates. Values come from environment-style configuration, each
// defaulting to the empty string.
var identityKeys = []string{
	"FIRST_NAME",
	"LAST_NAME",
	"EMAIL",
	"PHONE",
	"ADDRESS",
	"GITHUB",
	"LINKEDIN",
}

// Profile is the candidate's identity record: a flat mapping of placeholder
// name to value, used only for template substitution. It is constructed once
// at startup and passed to whichever component needs it.
type Profile struct {
	values map[string]string
}

// LoadProfile builds the identity profile through the given lookup function
// (usually os.Getenv, after godotenv has loaded any .env file).
func LoadProfile(getenv func(string) string) *Profile {
	values := make(map[string]string, len(identityKeys))
	for _, key := range identityKeys {
		values[key] = getenv(key)
	}
	return &Profile{values: values}
}

// Placeholders returns a copy of the placeholder map for template filling.
func (p *Profile) Placeholders() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Get returns the value for one placeholder key, or "" if unknown.
func (p *Profile) Get(key string) string {
	return p.values[key]
}
