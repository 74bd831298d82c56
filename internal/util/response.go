package util

type Envelope map[string]any

// Success is the uniform happy-path payload. Extra key/value pairs are merged
// into the envelope alongside the success flag.
func Success(kv ...any) Envelope {
	env := Envelope{"success": true}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			env[key] = kv[i+1]
		}
	}
	return env
}

// Failure is the uniform failure payload. No diagnostic detail crosses the
// boundary; that belongs to the server-side log.
func Failure() Envelope {
	return Envelope{"success": false}
}
