/*
Package server implements msgpack IPC for backronym expansion.

The server package provides a minimal interface for expanding input text using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports expansion requests and wordlist info ops.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Expansion requests use mainly this structure:

	{"id": "req_001", "x": "hello world"}

The server responds with one line per input token:

	{"id": "req_001", "ln": ["Happy Eels Like Lemon Oil", "Worms Order Rare Lovely Dirt"], "c": 2, "t": 145}

Wordlist info enables runtime inspection of the loaded index:

	{"id": "dict_001", "action": "get_info"}

Response structures include status information and error details when an op fails.

# Message Types

ExpandRequest and ExpandResponse handle the main text expansion.
Request includes an input text string; responses contain the expanded lines plus timing data in microseconds.

WordlistRequest and WordlistResponse report on the loaded wordlist.
Supported actions: "get_info" and "health".

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// ExpandRequest - minimal expansion request
type ExpandRequest struct {
	ID   string `msgpack:"id"`
	Text string `msgpack:"x"`
}

// ExpandResponse - expansion response, one line per input token
type ExpandResponse struct {
	ID        string   `msgpack:"id"`
	Lines     []string `msgpack:"ln"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// WordlistRequest - wordlist info request
type WordlistRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"` // "get_info", "health"
}

// WordlistResponse - wordlist info response
type WordlistResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Error   string `msgpack:"error,omitempty"`
	Words   int    `msgpack:"words,omitempty"`
	Letters int    `msgpack:"letters,omitempty"`
}

// ExpandError holds basic error information for failed requests
type ExpandError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
