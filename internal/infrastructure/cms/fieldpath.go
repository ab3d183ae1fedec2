package cms

import (
	"fmt"
	"strconv"
	"strings"
)

// pathSegment is one step of a field path: a map key, optionally followed by
// an array index ("cards[0]" -> key "cards", index 0).
type pathSegment struct {
	key   string
	index int
	hasIx bool
}

func parseFieldPath(path string) ([]pathSegment, error) {
	if path == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(path, ".")
	segments := make([]pathSegment, 0, len(parts))
	for _, part := range parts {
		seg := pathSegment{key: part, index: -1}
		if open := strings.Index(part, "["); open != -1 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("malformed field path segment %q", part)
			}
			ix, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil || ix < 0 {
				return nil, fmt.Errorf("malformed array index in segment %q", part)
			}
			seg.key = part[:open]
			seg.index = ix
			seg.hasIx = true
		}
		if seg.key == "" {
			return nil, fmt.Errorf("malformed field path segment %q", part)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// SetEntryField sets value at a dot path within an entry data object,
// creating intermediate objects as needed. Array steps ("cards[0]") must
// reference an existing element; paths never grow arrays.
func SetEntryField(data map[string]any, path string, value any) error {
	segments, err := parseFieldPath(path)
	if err != nil {
		return err
	}

	current := data
	for i, seg := range segments {
		last := i == len(segments)-1

		if !seg.hasIx {
			if last {
				current[seg.key] = value
				return nil
			}
			next, ok := current[seg.key].(map[string]any)
			if !ok {
				if current[seg.key] != nil {
					return fmt.Errorf("field path %q crosses non-object at %q", path, seg.key)
				}
				next = make(map[string]any)
				current[seg.key] = next
			}
			current = next
			continue
		}

		list, ok := current[seg.key].([]any)
		if !ok {
			return fmt.Errorf("field path %q references missing array %q", path, seg.key)
		}
		if seg.index >= len(list) {
			return fmt.Errorf("field path %q index %d out of range for %q", path, seg.index, seg.key)
		}

		if last {
			list[seg.index] = value
			return nil
		}
		next, ok := list[seg.index].(map[string]any)
		if !ok {
			return fmt.Errorf("field path %q crosses non-object at %q[%d]", path, seg.key, seg.index)
		}
		current = next
	}

	return nil
}
