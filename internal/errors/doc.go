// Package errors provides coded, self-describing errors for markout.
//
// Every failure a user can hit carries an identifier like "E101" that
// resolves to a registered message, a longer explanation, and a
// documentation link. Builders attach the rest: the file position that
// caused it, a fix suggestion, a code example.
//
// Codes group by subsystem: E1xx config (markout.json), E2xx catalog
// and code generation, E3xx build, E4xx publish, E5xx CLI.
//
// # Usage
//
//	err := errors.New("E101").
//	    WithLocation("markout.json", 4, 18).
//	    WithSuggestion("Remove the trailing comma on line 4")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Invalid markout.json
//	//
//	//   markout.json:4:18
//	//
//	//      2 │   "name": "blog",
//	//      3 │   "output": "dist",
//	//   →  4 │   "baseUrl": "/",
//	//        │                  ^
//	//      5 │ }
//	//
//	//   Hint: Remove the trailing comma on line 4
//	//
//	//   Learn more: https://markout.dev/docs/errors/E101
//
// Format renders for terminals, FormatCompact for one-line logs, and
// FormatJSON for tooling. PrintError picks the right form for a CLI's
// stderr.
package errors
