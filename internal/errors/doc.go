// Package errors provides the structured errors the typecraft command
// prints.
//
// Each error has a registered code that maps to a category, a short
// message, and a longer explanation:
//
//	E1xx  config    typecraft.json and flag problems
//	E2xx  connect   dialing, kicks, lost connections
//	E3xx  protocol  decoding captures and live traffic
//	E4xx  cli       command usage
//
// Errors from the library packages are mapped onto codes with Classify.
// A decode failure inside a capture file can carry the file offset; the
// formatted error then shows a hex dump around it:
//
//	err := errors.New("E302").
//	    WithOffset("packets/0007-in-map-chunk.bin", 12, data).
//	    WithSuggestion("The capture was cut short; re-record it")
//
//	fmt.Print(err.Format())
//	// ERROR E302: Truncated packet
//	//
//	//   packets/0007-in-map-chunk.bin+0x000c
//	//
//	//   → 0x0000 │ 33 00 00 00 40 00 40 00 00 0f 7f 0f 00 00 00 10
//	//
//	//   The input ended in the middle of a packet body.
//	//
//	//   Hint: The capture was cut short; re-record it
package errors
