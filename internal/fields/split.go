package fields

import "strings"

// Split splits line on each delimiter byte, keeping empty fields.
// An empty line gives a single empty field.
func Split(line string, delimiter byte) (fields []string) {
	return strings.Split(line, string(delimiter))
}
