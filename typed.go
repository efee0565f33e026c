package ce

import "strconv"

// FieldType is the set of types a reflected field can be read back as.
type FieldType interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string | bool
}

// Value reads a field as T. Reflected fields come back from the attribute as
// strings; those are parsed into T. When the value cannot be converted the
// zero value of T is returned with false.
func Value[T FieldType](s *Store, name string) (T, bool) {
	var zero T
	switch v := s.Get(name).(type) {
	case T:
		return v, true
	case string:
		return convertString(v, zero)
	case float64:
		return convertFloat64(v, zero)
	case int:
		return convertFloat64(float64(v), zero)
	}
	return zero, false
}

func convertFloat64[T FieldType](f float64, zero T) (T, bool) {
	var result any
	switch any(zero).(type) {
	case int:
		result = int(f)
	case int8:
		result = int8(f)
	case int16:
		result = int16(f)
	case int32:
		result = int32(f)
	case int64:
		result = int64(f)
	case uint:
		result = uint(f)
	case uint8:
		result = uint8(f)
	case uint16:
		result = uint16(f)
	case uint32:
		result = uint32(f)
	case uint64:
		result = uint64(f)
	case float32:
		result = float32(f)
	case float64:
		result = f
	case bool:
		result = f != 0
	case string:
		result = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if result != nil {
		return result.(T), true
	}
	return zero, false
}

func convertString[T FieldType](s string, zero T) (T, bool) {
	var result any
	switch any(zero).(type) {
	case int:
		if v, err := strconv.Atoi(s); err == nil {
			result = v
		}
	case int8:
		if v, err := strconv.ParseInt(s, 10, 8); err == nil {
			result = int8(v)
		}
	case int16:
		if v, err := strconv.ParseInt(s, 10, 16); err == nil {
			result = int16(v)
		}
	case int32:
		if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			result = int32(v)
		}
	case int64:
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			result = v
		}
	case uint:
		if v, err := strconv.ParseUint(s, 10, 0); err == nil {
			result = uint(v)
		}
	case uint8:
		if v, err := strconv.ParseUint(s, 10, 8); err == nil {
			result = uint8(v)
		}
	case uint16:
		if v, err := strconv.ParseUint(s, 10, 16); err == nil {
			result = uint16(v)
		}
	case uint32:
		if v, err := strconv.ParseUint(s, 10, 32); err == nil {
			result = uint32(v)
		}
	case uint64:
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			result = v
		}
	case float32:
		if v, err := strconv.ParseFloat(s, 32); err == nil {
			result = float32(v)
		}
	case float64:
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			result = v
		}
	case bool:
		if v, err := strconv.ParseBool(s); err == nil {
			result = v
		}
	case string:
		result = s
	}
	if result != nil {
		return result.(T), true
	}
	return zero, false
}
