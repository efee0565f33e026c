package ce

type LogLevel int

const (
	undefined LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Plugin integrates with a Registry. Implement Register to define a set of
// components or adjust the registry configuration.
type Plugin interface {
	Register(*Registry)
}

// Options defines configuration options for a registry.
type Options struct {
	// Level of the logs to write to stdout.
	// Options: Error, Warn, Info, Debug.
	LogLvl LogLevel

	// Plugins to extend the registry, applied in order by Config.
	Plugins []Plugin
}

// Definitions is a Plugin that defines each of its components on registration.
// Failures are logged and do not stop the remaining definitions.
type Definitions []Definition

func (ds Definitions) Register(r *Registry) {
	for _, def := range ds {
		if err := r.Define(def); err != nil {
			r.logErr(nil, "plugin failed to define %q: %v", def.ID, err)
		}
	}
}
