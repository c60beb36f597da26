// Package uconfig provides a typed configuration base. A config type
// declares its fields in a definition hook and gets normalization, type
// validation, JSON persistence, equality and structural diffing for free.
//
// # Defining a Config
//
// A config type implements [Definer]. Its Define method is called once by
// [New] and populates fields through the [Builder]:
//
//	var UserTypes = uconfig.NewEnumType("UserTypes", uconfig.KindString)
//	var Client = UserTypes.Member("CLIENT", "client")
//
//	type ServerConfig struct {
//	    *uconfig.Config
//	}
//
//	func (ServerConfig) Define(b *uconfig.Builder) error {
//	    b.Set("host", "localhost")
//	    b.Set("port", 8080)
//	    b.Set("origin", uconfig.Tuple{0, 0}) // stored as a list
//	    b.Set("user_type", Client)
//	    return nil
//	}
//
//	cfg, err := uconfig.New(ServerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	server := ServerConfig{Config: cfg}
//
// A type that embeds [Unimplemented] and never overrides Define fails with
// [ErrNotImplemented].
//
// # Values
//
// Every field holds a [Value]: null, bool, int, float, string, an [Enum]
// member, a list, or an insertion-ordered [Map] of further values. Tuples
// are accepted while defining and are rewritten to lists by [Normalize] when
// the config is built. Anything else (functions, channels, arbitrary structs)
// is carried as an opaque value and rejected with a [*ValidationError].
//
// Bool and int are distinct kinds. An enum member is valid when its type is
// backed by one of the allowed scalar kinds and its primitive has that kind.
//
// # Persistence
//
// [Config.Save] writes the flattened fields (enum members replaced by their
// primitive values) as indented JSON, two spaces by default:
//
//	err := cfg.Save("server.json", uconfig.WithIndent(4))
//
// [Config.Load] replaces every field with the top-level keys of a JSON
// object. Loaded data is trusted: it is not normalized or validated. Call
// [Config.Revalidate] to check it. YAML is available through
// [Config.SaveYAML] and [Config.LoadYAML].
//
// # Comparing Configs
//
// [Config.Equal] and [Config.Difference] accept any config instance,
// including user types that embed *Config, and return a [*TypeError] for
// anything else. Difference reports fields that are missing or different
// as "first.<name>" (value from the receiver) and "second.<name>" (value
// from the argument):
//
//	diff, err := a.Difference(b)
//	// {"first.x": 5, "second.x": 3, "second.z": true}
//
// Comparison is structural: a list equals a tuple with the same elements,
// ints equal floats of the same value, and an enum member equals its
// primitive, so a saved and reloaded config equals the original.
package uconfig
