// Package storeenv publishes .env values into the process environment.
//
// An optional prefix is prepended to every key: with Prefix "APP_", the
// key HOST is checked and written as APP_HOST.
//
// Example:
//
//	loader := dotenv.New(".env").WithEnv(storeenv.New(storeenv.Options{Prefix: "APP_"}))
//	err := loader.Parse()
//	err = loader.ToEnv(false)
package storeenv
