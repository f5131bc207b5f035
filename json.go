package chunklist

import "encoding/json"

// MarshalJSON encodes the list as a JSON array of its elements, in order.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// UnmarshalJSON decodes a JSON array, replacing the list's contents with the
// decoded elements. The array length serves as the arena size hint. Existing
// capacity is reused.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	l.Clear()
	l.ReserveExact(len(values))
	for _, v := range values {
		l.PushBack(v)
	}
	return nil
}
