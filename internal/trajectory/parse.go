package trajectory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Errors returned by Parse and ReadFile.
var (
	// ErrUnreadable indicates the file could not be read as text.
	ErrUnreadable = errors.New("file is not readable as text")

	// ErrMalformedHeader indicates the parameter line is too short or a
	// parameter token does not carry a numeric value.
	ErrMalformedHeader = errors.New("malformed parameter line")
)

// MalformedSampleError reports a data line that could not be parsed into a
// sample. Line is the 1-based line number within the file.
type MalformedSampleError struct {
	Line int
	Err  error
}

func (e *MalformedSampleError) Error() string {
	return fmt.Sprintf("malformed sample on line %d: %v", e.Line, e.Err)
}

func (e *MalformedSampleError) Unwrap() error { return e.Err }

// headerFields maps parameter names to their token position on the
// parameter line. The simulator writes a fixed column layout, so positions
// are part of the file format contract; changes to the upstream format
// only touch this table.
var headerFields = map[string]int{
	"he":    17,
	"gamma": 20,
}

// minHeaderTokens is the minimum token count the parameter line must have
// for every entry in headerFields to be addressable.
const minHeaderTokens = 21

// extractHeaderParams tokenizes the parameter line and pulls out the named
// simulation parameters. Tokens may carry a trailing comma, which is
// stripped; anything else that keeps the value from parsing as a number is
// a malformed header.
func extractHeaderParams(paramLine string) (map[string]string, error) {
	tokens := strings.Fields(paramLine)
	if len(tokens) < minHeaderTokens {
		return nil, fmt.Errorf("%w: got %d tokens, need %d", ErrMalformedHeader, len(tokens), minHeaderTokens)
	}

	params := make(map[string]string, len(headerFields))
	for name, pos := range headerFields {
		value := strings.TrimSuffix(tokens[pos], ",")
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return nil, fmt.Errorf("%w: parameter %s=%q is not numeric", ErrMalformedHeader, name, tokens[pos])
		}
		params[name] = value
	}
	return params, nil
}

// Parse decodes the contents of one simulation output file.
//
// The first line is a banner and is discarded. The second line is the
// parameter line carrying he and gamma. Every following line is a data
// line of at least three whitespace-separated floats (x, y, y'); the empty
// element produced by the file's terminating newline is skipped. Parse is
// pure: on any error no partial result is returned.
func Parse(content string) (ParseResult, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return ParseResult{}, fmt.Errorf("%w: file has no parameter line", ErrMalformedHeader)
	}

	// lines[0] is the banner.
	params, err := extractHeaderParams(lines[1])
	if err != nil {
		return ParseResult{}, err
	}

	data := lines[2:]
	for len(data) > 0 && strings.TrimSpace(data[len(data)-1]) == "" {
		data = data[:len(data)-1]
	}

	samples := make([]Sample, 0, len(data))
	for i, line := range data {
		lineNo := i + 3 // banner + parameter line + 1-based
		tokens := strings.Fields(line)
		if len(tokens) < 3 {
			return ParseResult{}, &MalformedSampleError{
				Line: lineNo,
				Err:  fmt.Errorf("got %d tokens, need 3", len(tokens)),
			}
		}

		var vals [3]float64
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(tokens[j], 64)
			if err != nil {
				return ParseResult{}, &MalformedSampleError{
					Line: lineNo,
					Err:  fmt.Errorf("token %q is not a float", tokens[j]),
				}
			}
			vals[j] = v
		}
		samples = append(samples, Sample{X: vals[0], Y: vals[1], YPrime: vals[2]})
	}

	return ParseResult{Samples: samples, He: params["he"], Gamma: params["gamma"]}, nil
}

// ReadFile reads and parses the simulation output file at path.
func ReadFile(path string) (ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !utf8.Valid(data) {
		return ParseResult{}, fmt.Errorf("%w: %s is not valid text", ErrUnreadable, filepath.Base(path))
	}
	return Parse(string(data))
}

// LayerName builds the display name for a layer loaded from path: the base
// file name with its extension stripped, followed by the he and gamma
// parameters from the file header.
func LayerName(path, he, gamma string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s he=%s gamma=%s", base, he, gamma)
}
