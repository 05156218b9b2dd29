// Package schemaassets embeds the TriG mapping documents under
// schemas/ into the compiled binary, the way internal/http/ui.go
// boxes up cayley's web UI templates with packr — here against a
// box of mapping schemas instead of HTML. internal/http/ui.go itself
// uses packr's v1 API (packr.NewBox); go.mod pins v2 here, whose Box
// exposes the same List/FindString shape so the wiring carries over
// unchanged.
package schemaassets

import (
	"fmt"

	"github.com/gobuffalo/packr/v2"

	"github.com/ARGA-Genomes/arga-transformer/clog"
)

var log = clog.Component("schemaassets")

var box = packr.New("schemas", "../../schemas")

// Names lists every embedded schema document's box-relative path,
// e.g. "collecting.trig".
func Names() []string {
	return box.List()
}

// Open returns the contents of the named embedded schema document.
func Open(name string) (string, error) {
	s, err := box.FindString(name)
	if err != nil {
		return "", fmt.Errorf("schemaassets: %s: %w", name, err)
	}
	return s, nil
}

// LoadAll returns every embedded .trig document's contents keyed by
// name, in the order packr lists them, for a caller that wants to
// load the full built-in schema set in one pass.
func LoadAll() (map[string]string, error) {
	names := Names()
	out := make(map[string]string, len(names))
	for _, name := range names {
		s, err := Open(name)
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	log.Infof("loaded %d embedded schema documents", len(out))
	return out, nil
}
