// Package advertisement decodes BLE advertising and scan response payloads.
//
// A payload is a sequence of [length][type][data] structures. Parse splits it
// into Items; New interprets the items into an Advertisement. Both are pure
// functions over their input.
package advertisement

import (
	"errors"
	"fmt"
)

// ErrDataFormat is matched by every DataFormatError.
var ErrDataFormat = errors.New("malformed advertising data")

// DataFormatError reports a structure whose declared length runs past the
// end of the payload.
type DataFormatError struct {
	Offset    int // index of the length byte
	Length    int // declared length, type byte included
	Remaining int // bytes available after the length byte
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("advertising data specifies length %d but only has %d bytes remaining", e.Length, e.Remaining)
}

// Is allows errors.Is(err, ErrDataFormat)
func (e *DataFormatError) Is(target error) bool {
	return target == ErrDataFormat
}

// Parse splits a raw payload into items, in payload order.
//
// A zero length byte is padding and is skipped. Types are not validated and
// unknown types are returned as-is. Returned data slices do not alias b.
func Parse(b []byte) ([]Item, error) {
	items := make([]Item, 0, 4)

	for i := 0; i < len(b); {
		length := int(b[i])
		if length == 0 {
			i++
			continue
		}
		i++
		if i+length > len(b) {
			return nil, &DataFormatError{Offset: i - 1, Length: length, Remaining: len(b) - i}
		}

		data := make([]byte, length-1)
		copy(data, b[i+1:i+length])
		items = append(items, Item{Type: DataType(b[i]), Data: data})
		i += length
	}

	return items, nil
}
