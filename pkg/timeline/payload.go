package timeline

import (
	"cmp"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// PayloadKind names the variant held by a Payload.
type PayloadKind string

const (
	PayloadEmpty          PayloadKind = "empty"
	PayloadNumberList     PayloadKind = "number_list"
	PayloadIndexedStrings PayloadKind = "indexed_strings"
	PayloadKeyValueMap    PayloadKind = "key_value_map"
)

// Payload is the data block of an event. Exactly one of Numbers, Items or
// Fields is populated, as named by Kind; build one with ClassifyPayload or the
// variant constructors rather than by hand.
type Payload struct {
	Kind    PayloadKind       `json:"kind"`
	Numbers []int             `json:"numbers,omitempty"`
	Items   []string          `json:"items,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func EmptyPayload() Payload {
	return Payload{Kind: PayloadEmpty}
}

func NumberList(numbers ...int) Payload {
	return Payload{Kind: PayloadNumberList, Numbers: slices.Clone(numbers)}
}

func IndexedStrings(items ...string) Payload {
	return Payload{Kind: PayloadIndexedStrings, Items: slices.Clone(items)}
}

func KeyValueMap(fields map[string]string) Payload {
	m := make(map[string]string, len(fields))
	maps.Copy(m, fields)
	return Payload{Kind: PayloadKeyValueMap, Fields: m}
}

// Field returns a named value of a KeyValueMap payload. Other variants have no fields.
func (p Payload) Field(name string) (string, bool) {
	if p.Kind != PayloadKeyValueMap {
		return "", false
	}
	v, ok := p.Fields[name]
	return v, ok
}

var (
	digitsOnlyRe   = regexp.MustCompile(`^[\d\s]+$`)
	digitRunRe     = regexp.MustCompile(`^\d+$`)
	indexedStartRe = regexp.MustCompile(`^\s*\d+\s*=`)
	indexedPairRe  = regexp.MustCompile(`(\d+)\s*=\s*"([^"]*)"`)
	keyValuePairRe = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)
)

// ClassifyPayload turns the inner text of a `data = { ... }` block into a
// Payload. Rules are tried top to bottom and the first match wins, even when a
// later rule would also match:
//
//	body (trimmed)                     variant          value
//	---------------------------------  ---------------  ------------------------------------
//	only digits and whitespace         NumberList       every pure digit run, in order
//	starts with `<int> =`              IndexedStrings   `<int> = "<s>"` pairs sorted by int
//	anything else                      KeyValueMap      `<ident> = "<s>"` pairs, last wins
//
// A fragment with no data block at all is PayloadEmpty; see DecodeEvent.
func ClassifyPayload(body string) (Payload, error) {
	body = strings.TrimSpace(body)

	switch {
	case digitsOnlyRe.MatchString(body):
		return parseNumberList(body)
	case indexedStartRe.MatchString(body):
		return parseIndexedStrings(body)
	default:
		return parseKeyValueMap(body), nil
	}
}

func parseNumberList(body string) (Payload, error) {
	var numbers []int
	for _, tok := range strings.Fields(body) {
		if !digitRunRe.MatchString(tok) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Payload{}, fmt.Errorf("number list value %q: %w", tok, err)
		}
		numbers = append(numbers, n)
	}
	return Payload{Kind: PayloadNumberList, Numbers: numbers}, nil
}

func parseIndexedStrings(body string) (Payload, error) {
	type indexed struct {
		index int
		value string
	}

	matches := indexedPairRe.FindAllStringSubmatch(body, -1)
	pairs := make([]indexed, 0, len(matches))
	for _, m := range matches {
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			return Payload{}, fmt.Errorf("indexed string key %q: %w", m[1], err)
		}
		pairs = append(pairs, indexed{index: idx, value: m[2]})
	}

	slices.SortStableFunc(pairs, func(a, b indexed) int {
		return cmp.Compare(a.index, b.index)
	})

	items := make([]string, len(pairs))
	for i, p := range pairs {
		items[i] = p.value
	}
	return Payload{Kind: PayloadIndexedStrings, Items: items}, nil
}

func parseKeyValueMap(body string) Payload {
	fields := make(map[string]string)
	for _, m := range keyValuePairRe.FindAllStringSubmatch(body, -1) {
		fields[m[1]] = m[2]
	}
	return Payload{Kind: PayloadKeyValueMap, Fields: fields}
}
