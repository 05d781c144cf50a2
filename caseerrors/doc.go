// Package caseerrors provides structured error types for ccase.
//
// Case conversion itself never fails: scanning, segmentation, pattern
// application and joining are total over every input string. Errors only
// come from the configuration surfaces around the core: resolving a case by
// name, assembling custom boundaries, and loading preset files.
//
// # Error Categories
//
//   - UnknownCaseError: a case name that is not registered
//   - ConfigError: invalid options, custom boundary geometry, or conflicting registrations
//   - ParseError: a preset file that cannot be decoded
//
// # Usage with errors.Is
//
//	p, err := preset.Lookup(name)
//	if errors.Is(err, caseerrors.ErrUnknownCase) {
//	    var unknown *caseerrors.UnknownCaseError
//	    if errors.As(err, &unknown) {
//	        fmt.Println("known cases:", unknown.Known)
//	    }
//	}
package caseerrors
