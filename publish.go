package dotenv

import (
	"errors"
	"fmt"
)

// Store names reported in AlreadyDefinedError.
const (
	StoreConstants = "constants"
	StoreEnv       = "env"
	StoreServer    = "server"
)

// Define creates a constant for every parsed key, in parse order.
// It stops at the first key that is already defined and returns an
// *AlreadyDefinedError; constants created before that key are kept.
func (l *Loader) Define() error {
	if l.env == nil {
		return notParsed("Define")
	}
	return l.publish(StoreConstants, l.constants, false)
}

// ToEnv publishes every parsed key to the environment store, in parse order.
// Without overwrite, an existing variable stops publishing with an
// *AlreadyDefinedError; variables set before it are kept.
func (l *Loader) ToEnv(overwrite bool) error {
	if l.env == nil {
		return notParsed("ToEnv")
	}
	return l.publish(StoreEnv, l.environ, overwrite)
}

// ToServer publishes every parsed key to the server store, with the same
// semantics as ToEnv.
func (l *Loader) ToServer(overwrite bool) error {
	if l.env == nil {
		return notParsed("ToServer")
	}
	return l.publish(StoreServer, l.server, overwrite)
}

// publish writes entries one by one. There is no rollback: a failure
// leaves earlier keys published and the parsed environment untouched.
func (l *Loader) publish(name string, store Store, overwrite bool) error {
	if store == nil {
		return fmt.Errorf("dotenv: no %s store configured", name)
	}

	for _, entry := range l.env.entries {
		if !overwrite && store.Has(entry.Key) {
			return &AlreadyDefinedError{Key: entry.Key, Store: name}
		}

		if err := store.Set(entry.Key, entry.Value); err != nil {
			if errors.Is(err, ErrConstantExists) {
				return &AlreadyDefinedError{Key: entry.Key, Store: name}
			}
			return fmt.Errorf("dotenv: publish %s to %s: %w", entry.Key, name, err)
		}
		l.logger.Trace("published key", "store", name, "key", entry.Key)
	}

	l.logger.Debug("published environment", "store", name, "keys", len(l.env.entries), "overwrite", overwrite)
	return nil
}
