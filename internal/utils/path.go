package utils

import (
	"os"

	"github.com/charmbracelet/log"
)

// SystemWordlist is the well-known dictionary location used when nothing
// else is configured.
const SystemWordlist = "/usr/share/dict/words"

// WordlistEnvVar overrides the wordlist path when set.
const WordlistEnvVar = "BACKRO_WORDLIST"

// ResolveWordlistPath picks the wordlist path from candidates in order of
// preference:
// 1. Explicit -w flag
// 2. BACKRO_WORDLIST environment variable
// 3. Config file [wordlist] path
// 4. System dictionary
// Readability is not probed here; opening the file reports that failure.
func ResolveWordlistPath(flagPath, configPath string) string {
	candidates := []struct {
		source string
		path   string
	}{
		{"flag", flagPath},
		{"env", os.Getenv(WordlistEnvVar)},
		{"config", configPath},
		{"system", SystemWordlist},
	}

	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		log.Debugf("wordlist path from %s: %s", c.source, c.path)
		if !FileExists(c.path) {
			log.Debugf("wordlist %s does not exist yet, using it anyway", c.path)
		}
		return c.path
	}
	return SystemWordlist
}
