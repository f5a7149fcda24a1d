// Package optionsfile reads dotenv.Options from YAML, JSON, or TOML files.
//
// Format is auto-detected from extension (.yaml, .yml, .json, .toml).
//
// Example options.yaml:
//
//	path: /etc/app/.env
//	expect: [DATABASE_URL, API_KEY]
//	to_env:
//	  overwrite: false
//
// Usage:
//
//	opts, err := optionsfile.Read("options.yaml", optionsfile.Options{})
//	loader, err := dotenv.Load(opts)
package optionsfile
