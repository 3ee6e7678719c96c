package errors

import (
	"maps"
	"slices"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config errors (E100-E199)

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "typecraft looks for typecraft.json in the working directory unless --config names another file.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or is not valid JSON.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid server address",
		Detail:   "The host must not be empty and the port must be between 1 and 65535.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid username",
		Detail:   "Usernames must be between 1 and 16 characters long.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid transport",
		Detail:   "The transport must be \"tcp\" or \"websocket\". The websocket transport also needs a bridge URL.",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Invalid log settings",
		Detail:   "log.level must be debug, info, warn, or error and log.format must be text or json.",
	},

	// Connect errors (E200-E299)

	"E200": {
		Category: CategoryConnect,
		Message:  "Could not connect to server",
		Detail:   "The server did not accept the connection. Check that it is running and reachable.",
	},
	"E201": {
		Category: CategoryConnect,
		Message:  "Kicked by server",
		Detail:   "The server closed the connection with a disconnect packet.",
	},
	"E202": {
		Category: CategoryConnect,
		Message:  "Connection lost",
		Detail:   "The transport failed while the session was running.",
	},
	"E203": {
		Category: CategoryConnect,
		Message:  "Telemetry server failed",
		Detail:   "The metrics listener could not be started.",
	},
	"E204": {
		Category: CategoryConnect,
		Message:  "Capture sink unavailable",
		Detail:   "The capture directory or bucket could not be prepared.",
	},

	// Protocol errors (E300-E399)

	"E300": {
		Category: CategoryProtocol,
		Message:  "Cannot read capture",
		Detail:   "The capture file could not be opened.",
	},
	"E301": {
		Category: CategoryProtocol,
		Message:  "Unknown opcode",
		Detail:   "The packet id is not part of protocol version 14. Packets after it cannot be located because their length is unknown.",
	},
	"E302": {
		Category: CategoryProtocol,
		Message:  "Truncated packet",
		Detail:   "The input ended in the middle of a packet body.",
	},
	"E303": {
		Category: CategoryProtocol,
		Message:  "Malformed packet",
		Detail:   "A packet contained a value no valid encoder produces, such as a negative length or a corrupt chunk payload.",
	},
	"E304": {
		Category: CategoryProtocol,
		Message:  "Packet exceeds limit",
		Detail:   "A length or count in the packet is larger than the decoder allows.",
	},

	// CLI errors (E400-E499)

	"E400": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with missing or extra arguments.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	return slices.Sorted(maps.Keys(registry))
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
