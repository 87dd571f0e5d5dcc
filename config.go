package yadict

import "github.com/spf13/viper"

// FromEnv creates a client whose token is read from the named environment
// variable. It fails with a ConfigError before any network call when the
// variable is unset or empty.
func FromEnv(envVar string, opts ...Option) (*Client, error) {
	v := viper.New()
	v.AutomaticEnv()

	token := v.GetString(envVar)
	if token == "" {
		return nil, &ConfigError{Var: envVar, Err: ErrMissingToken}
	}

	return New(token, opts...), nil
}
