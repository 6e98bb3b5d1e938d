package utils

// SafeDeref safely dereferences a string pointer and returns empty string if nil
func SafeDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SafeDerefInt32 dereferences an int32 pointer as an int, 0 if nil
func SafeDerefInt32(i *int32) int {
	if i == nil {
		return 0
	}
	return int(*i)
}

// SafeDerefBool dereferences a bool pointer, false if nil
func SafeDerefBool(b *bool) bool {
	return b != nil && *b
}
