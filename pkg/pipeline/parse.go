package pipeline

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/domsearch/pkg/errors"
	"github.com/matzehuels/domsearch/pkg/graph"
	dsio "github.com/matzehuels/domsearch/pkg/io"
)

// Parse reads a PACE graph from path, or from stdin when path is "" or "-".
func Parse(path string, stdin io.Reader) (*graph.Graph, error) {
	if path == "" || path == "-" {
		return dsio.ReadGraph(stdin)
	}
	return dsio.ReadGraphFile(path)
}

// LoadProfile reads solve options from a TOML file:
//
//	seed = 7
//	timeout = "30s"
//	workers = 4
//
//	[solver]
//	shuffle_every = 5
//	max_divisor = 2000
//
// Fields absent from the file keep their zero values, so defaults still
// apply. Unknown keys are rejected.
func LoadProfile(path string) (Options, error) {
	var opts Options
	if err := errors.ValidatePath(path); err != nil {
		return opts, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "read profile")
	}
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidPath, err, "read profile")
	}
	return DecodeProfile(data)
}

// DecodeProfile parses TOML profile data. See [LoadProfile].
func DecodeProfile(data []byte) (Options, error) {
	var opts Options
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse profile")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return opts, errors.New(errors.ErrCodeInvalidConfig, "unknown profile key %q", undecoded[0].String())
	}
	return opts, nil
}
