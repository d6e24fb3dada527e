// Package modbump provides a library for bumping the patch version stored in
// a JSON manifest such as a mod's modinfo.json.
//
// It provides functionalities for:
//   - Decoding a JSON object into an order-preserving document (Object) whose
//     members keep their original key order, nesting and number literals.
//   - Parsing strict "major.minor.patch" numeric versions (Version) and
//     incrementing the patch component.
//   - Rewriting the document in place with two space indentation and a
//     trailing newline, changing nothing but the "version" member.
//
// Failures are reported through the sentinel errors ErrNotFound, ErrParse,
// ErrMissingVersion and ErrMalformedVersion. The file is never written when
// an error is returned.
//
// Usage Example:
//
//	import (
//	    "fmt"
//	    "log"
//
//	    modbump "github.com/bcomnes/modbump/pkg"
//	)
//
//	func main() {
//	    newVersion, err := modbump.Bump("Mods/TweaksAndStuff/modinfo.json")
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    fmt.Println(newVersion)
//	}
package modbump
