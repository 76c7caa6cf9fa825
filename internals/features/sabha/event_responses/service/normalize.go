package service

// AnswerCount is the fixed length of an event-response answer vector.
const AnswerCount = 4

// NormalizeBoolArray coerces a decoded JSON value into exactly length
// booleans. Booleans copy through, the strings "true"/"false" convert
// (case-sensitively), everything else becomes false. Positions past the
// input's length stay false; non-array input yields an all-false vector.
func NormalizeBoolArray(input interface{}, length int) []bool {
	out := make([]bool, length)

	arr, ok := input.([]interface{})
	if !ok {
		return out
	}

	n := length
	if len(arr) < n {
		n = len(arr)
	}
	for i := 0; i < n; i++ {
		switch v := arr[i].(type) {
		case bool:
			out[i] = v
		case string:
			if v == "true" {
				out[i] = true
			}
		}
	}
	return out
}
