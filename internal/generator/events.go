// Package generator produces the simulated LLM event stream: a thinking
// phase, branch-selected content chunks, simulated failures, and a final
// done event carrying usage metadata.
package generator

// Kind is the SSE event name a consumer keys off of.
type Kind string

const (
	KindThinking Kind = "thinking"
	KindChunk    Kind = "chunk"
	KindError    Kind = "error"
	KindDone     Kind = "done"
)

// Event pairs an SSE event name with its JSON payload. Data is one of
// ThinkingData, ChunkData, ErrorData, or DoneData depending on Kind.
type Event struct {
	Kind Kind
	Data any
}

type ThinkingData struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ChunkData struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ErrorData struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Metadata is the usage accounting reported on the done event. Token counts
// are whitespace-delimited word counts over the content actually emitted.
type Metadata struct {
	RequestID        string  `json:"request_id"`
	TotalTokens      int     `json:"total_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TimeTaken        float64 `json:"time_taken"`
}

type DoneData struct {
	Message   string   `json:"message"`
	Metadata  Metadata `json:"metadata"`
	Timestamp string   `json:"timestamp"`
}
