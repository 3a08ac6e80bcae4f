package user

// Record is one stored user document. Besides the reserved "username" and
// "password" keys it holds arbitrary profile fields, so it stays a free-form
// map rather than a struct.
type Record map[string]any

const (
	fieldUsername = "username"
	fieldPassword = "password"
)

func (r Record) Username() string {
	name, _ := r[fieldUsername].(string)
	return name
}

func (r Record) PasswordHash() string {
	hash, _ := r[fieldPassword].(string)
	return hash
}

// Sanitized returns a copy with the password stripped. Every response and
// every token snapshot goes through this.
func (r Record) Sanitized() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if k == fieldPassword {
			continue
		}
		out[k] = v
	}
	return out
}

// applyProfile builds the next stored record from a client patch. Any
// client-supplied username or password is dropped; the authoritative values
// from the existing record are reattached. Fields absent from the patch are
// not carried over: a profile update replaces the profile.
func (r Record) applyProfile(patch map[string]any) Record {
	next := make(Record, len(patch)+2)
	for k, v := range patch {
		if k == fieldUsername || k == fieldPassword {
			continue
		}
		next[k] = v
	}
	next[fieldUsername] = r.Username()
	next[fieldPassword] = r.PasswordHash()
	return next
}

// withPassword returns a copy with the password hash replaced.
func (r Record) withPassword(hash string) Record {
	next := make(Record, len(r))
	for k, v := range r {
		next[k] = v
	}
	next[fieldPassword] = hash
	return next
}
