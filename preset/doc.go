// Package preset defines named case conventions and the registry that
// resolves them.
//
// A Preset bundles the three things that make up a case: the boundaries used
// to read it, the pattern applied to words, and the delimiter placed between
// them. The built-in presets are exported as variables (Snake, Camel, Title,
// ...) and registered in the default registry.
//
// # Lookup
//
// Names are matched by key, ignoring letter case and separators, so
// "UpperSnake", "upper_snake" and "upper-snake" all resolve to Constant
// through its alias:
//
//	p, err := preset.Lookup("upper-snake")
//	if errors.Is(err, caseerrors.ErrUnknownCase) {
//		// ...
//	}
//
// # Preset files
//
// Additional presets can be loaded from YAML:
//
//	cases:
//	  - name: dot
//	    aliases: [dotted]
//	    delimiter: "."
//	    boundaries:
//	      - lower_upper          # boundary name or short code ("aA")
//	      - separator: "."       # literal separator
//	      - sample: "aA1"        # boundaries found in a sample
//	    pattern: [remove_empty, lowercase]
//
// Registering a preset whose name is already taken is an error. A preset whose
// name or alias matches an existing alias takes the alias over and a warning
// is logged.
package preset
