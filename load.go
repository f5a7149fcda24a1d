package dotenv

// Load parses the file named by opts.Path and runs the steps opts enables,
// in order: Parse, Expect, Define, ToEnv, ToServer. The Loader is returned
// even when a step fails so that the parsed values can be inspected.
func Load(opts Options) (*Loader, error) {
	l := New(opts.Path)
	return l, l.Apply(opts)
}

// LoadPath parses path without validating or publishing anything.
func LoadPath(path string) (*Loader, error) {
	return Load(Options{Path: path})
}

// Apply runs the Load steps on l with its configured stores.
// opts.Path is ignored; l parses its own path.
func (l *Loader) Apply(opts Options) error {
	if err := l.Parse(); err != nil {
		return err
	}

	if opts.Expect != nil {
		if err := l.Expect(opts.Expect...); err != nil {
			return err
		}
	}

	if opts.Define {
		if err := l.Define(); err != nil {
			return err
		}
	}

	if opts.ToEnv != nil {
		if err := l.ToEnv(opts.ToEnv.Overwrite); err != nil {
			return err
		}
	}

	if opts.ToServer != nil {
		if err := l.ToServer(opts.ToServer.Overwrite); err != nil {
			return err
		}
	}

	return nil
}
