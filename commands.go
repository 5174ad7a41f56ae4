package proofkit

import "fmt"

// Greet returns the fixed greeting used by the host to check the backend
// is reachable.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// ValidateImage validates path with the global Validator and returns the
// record sent back to the host.
func ValidateImage(path string) Record {
	return Validate(path).Record()
}
