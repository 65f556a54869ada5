package chord

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// aliasFile is the TOML structure of a keymap alias file.
type aliasFile struct {
	Aliases map[string][]string `toml:"aliases"`
}

// LoadAliases reads chord aliases from TOML.
func LoadAliases(r io.Reader) (map[Chord][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aliases: %w", err)
	}
	return parseAliases("<reader>", data)
}

// LoadAliasFile reads chord aliases from a TOML file.
// A missing file yields no aliases and no error.
func LoadAliasFile(fs afero.Fs, path string) (map[Chord][]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading alias file %s: %w", path, err)
	}
	return parseAliases(path, data)
}

func parseAliases(source string, data []byte) (map[Chord][]string, error) {
	var f aliasFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	out := make(map[Chord][]string, len(f.Aliases))
	for name, specs := range f.Aliases {
		c := Chord(name)
		if !c.IsNamed() {
			return nil, fmt.Errorf("%s: %w: %q", source, ErrUnknownChord, name)
		}
		out[c] = specs
	}
	return out, nil
}
