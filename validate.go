package dotenv

// Expect checks that every key is present in the parsed environment.
// Presence is what counts: a key declared with an empty value satisfies it.
// All missing keys are reported together in a *MissingKeysError, in the
// order they were passed. Pass a slice with Expect(keys...).
func (l *Loader) Expect(keys ...string) error {
	if l.env == nil {
		return notParsed("Expect")
	}
	if len(keys) == 0 {
		return ErrNoKeys
	}

	if missing := missingKeys(l.env, keys); len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

// missingKeys returns the keys absent from env, keeping their order.
// A key listed twice is reported twice.
func missingKeys(env *Environment, keys []string) []string {
	var missing []string
	for _, key := range keys {
		if !env.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}
