// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strconv"
	"strings"
)

// phpPair is one entry of a serialized PHP array. Arrays decode to
// []phpPair so that the stored key order survives.
type phpPair struct {
	Key   string
	Value any
}

type phpDecoder struct {
	data string
	pos  int
}

// unserializePHP decodes the output of PHP's serialize() for the scalar
// types, strings and arrays. Objects are rejected.
func unserializePHP(data string) (any, error) {
	d := &phpDecoder{data: data}
	v, err := d.value()
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.data) {
		return nil, d.fail("trailing data")
	}

	return v, nil
}

// primaryRole returns the role of a serialized capabilities array
// (e.g. `a:1:{s:13:"administrator";b:1;}`), or "" when there is none.
// When roles is non-nil the first key naming a registered role wins,
// whatever its value. Otherwise the first granted key is taken.
func primaryRole(serialized string, roles map[string]struct{}) string {
	pairs := unserializePairs(serialized)
	for _, p := range pairs {
		if roles != nil {
			if _, ok := roles[p.Key]; ok {
				return p.Key
			}
			continue
		}
		if phpTruthy(p.Value) {
			return p.Key
		}
	}

	return ""
}

// registeredRoles returns the role names of a serialized user_roles
// option, or nil when the value is not a serialized array.
func registeredRoles(serialized string) map[string]struct{} {
	pairs := unserializePairs(serialized)
	if pairs == nil {
		return nil
	}

	roles := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		roles[p.Key] = struct{}{}
	}

	return roles
}

func unserializePairs(serialized string) []phpPair {
	if strings.TrimSpace(serialized) == "" {
		return nil
	}

	v, err := unserializePHP(serialized)
	if err != nil {
		return nil
	}

	pairs, _ := v.([]phpPair)
	return pairs
}

func phpTruthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case int64:
		return value != 0
	case float64:
		return value != 0
	case string:
		return value != "" && value != "0"
	case []phpPair:
		return len(value) > 0
	default:
		return false
	}
}

func (d *phpDecoder) value() (any, error) {
	if d.pos >= len(d.data) {
		return nil, d.fail("unexpected end")
	}

	tag := d.data[d.pos]
	switch tag {
	case 'N':
		if err := d.expect("N;"); err != nil {
			return nil, err
		}
		return nil, nil
	case 'b':
		raw, err := d.scalar("b:")
		if err != nil {
			return nil, err
		}
		return raw == "1", nil
	case 'i':
		raw, err := d.scalar("i:")
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, d.fail("bad integer")
		}
		return n, nil
	case 'd':
		raw, err := d.scalar("d:")
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, d.fail("bad float")
		}
		return f, nil
	case 's':
		return d.str()
	case 'a':
		return d.array()
	default:
		return nil, d.fail(fmt.Sprintf("unsupported type %q", tag))
	}
}

func (d *phpDecoder) str() (string, error) {
	if err := d.expect("s:"); err != nil {
		return "", err
	}
	n, err := d.length(':')
	if err != nil {
		return "", err
	}
	if err = d.expect(`"`); err != nil {
		return "", err
	}
	if n > len(d.data)-d.pos {
		return "", d.fail("string overflows input")
	}
	s := d.data[d.pos : d.pos+n]
	d.pos += n
	if err = d.expect(`";`); err != nil {
		return "", err
	}

	return s, nil
}

func (d *phpDecoder) array() ([]phpPair, error) {
	if err := d.expect("a:"); err != nil {
		return nil, err
	}
	n, err := d.length(':')
	if err != nil {
		return nil, err
	}
	if err = d.expect("{"); err != nil {
		return nil, err
	}

	// No entry is shorter than six bytes (`i:0;N;`).
	if n > (len(d.data)-d.pos)/6 {
		return nil, d.fail("array overflows input")
	}

	pairs := make([]phpPair, 0, n)
	for i := 0; i < n; i++ {
		key, err := d.value()
		if err != nil {
			return nil, err
		}
		var name string
		switch k := key.(type) {
		case string:
			name = k
		case int64:
			name = strconv.FormatInt(k, 10)
		default:
			return nil, d.fail("array key must be int or string")
		}

		val, err := d.value()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, phpPair{Key: name, Value: val})
	}

	if err = d.expect("}"); err != nil {
		return nil, err
	}

	return pairs, nil
}

// scalar consumes prefix and returns the text up to the next ';'.
func (d *phpDecoder) scalar(prefix string) (string, error) {
	if err := d.expect(prefix); err != nil {
		return "", err
	}
	end := strings.IndexByte(d.data[d.pos:], ';')
	if end < 0 {
		return "", d.fail("unterminated scalar")
	}
	raw := d.data[d.pos : d.pos+end]
	d.pos += end + 1

	return raw, nil
}

func (d *phpDecoder) length(term byte) (int, error) {
	end := strings.IndexByte(d.data[d.pos:], term)
	if end < 0 {
		return 0, d.fail("unterminated length")
	}
	n, err := strconv.Atoi(d.data[d.pos : d.pos+end])
	if err != nil || n < 0 {
		return 0, d.fail("bad length")
	}
	d.pos += end + 1

	return n, nil
}

func (d *phpDecoder) expect(token string) error {
	if !strings.HasPrefix(d.data[d.pos:], token) {
		return d.fail(fmt.Sprintf("expected %q", token))
	}
	d.pos += len(token)

	return nil
}

func (d *phpDecoder) fail(reason string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrMalformedSerializedValue, reason, d.pos)
}
