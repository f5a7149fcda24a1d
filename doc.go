// Package dotenv loads KEY=VALUE pairs from a .env file and publishes them.
//
// Quick Start:
//
//	loader := dotenv.New(".env").WithLogger(hclog.Default())
//	if err := loader.Parse(); err != nil {
//	    return err
//	}
//	if err := loader.Expect("DATABASE_URL", "API_KEY"); err != nil {
//	    return err
//	}
//	err := loader.ToEnv(false)
//
// Or in one call:
//
//	loader, err := dotenv.Load(dotenv.Options{
//	    Path:   ".env",
//	    Expect: []string{"DATABASE_URL"},
//	    ToEnv:  &dotenv.PublishOptions{},
//	})
//
// File format, one declaration per line:
//
//	[export ]KEY=VALUE
//
// KEY matches [a-zA-Z_][a-zA-Z0-9_]*. VALUE is the rest of the line,
// kept verbatim except that one pair of quotes wrapping all of it is
// removed. Other lines are ignored; there are no comments, escapes,
// interpolation or multi-line values. A repeated key keeps its first
// position and takes its last value.
//
// Publishing (Define, ToEnv, ToServer) walks keys in file order and stops
// at the first conflict without undoing earlier writes.
//
// See example_test.go for detailed usage.
package dotenv
