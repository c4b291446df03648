package internal

import (
	"os"
	"testing"
)

func TestLogOutput_MCPModeKeepsStdoutClean(t *testing.T) {
	// In MCP mode stdout is the JSON-RPC transport; a single log line on
	// it corrupts the protocol stream for the client.
	if logOutput(true) != os.Stderr {
		t.Error("MCP mode logs must go to stderr")
	}
	if logOutput(false) != os.Stdout {
		t.Error("HTTP mode logs should go to stdout")
	}
}
