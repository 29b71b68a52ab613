package conf

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment is a read-only table of environment variables.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment reads the process environment.
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is an in-memory Environment.
type MapEnvironment map[string]string

func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Layered consults each Environment in order and returns the first hit.
type Layered []Environment

func (l Layered) LookupEnv(key string) (string, bool) {
	for _, env := range l {
		if env == nil {
			continue
		}
		if v, ok := env.LookupEnv(key); ok {
			return v, true
		}
	}
	return "", false
}

// ReadDotEnv parses a dotenv file without touching the process environment.
func ReadDotEnv(path string) (MapEnvironment, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return MapEnvironment(values), nil
}
