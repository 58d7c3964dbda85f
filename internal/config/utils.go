package config

func ptrTo[T any](value T) *T {
	return &value
}

func boolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
