package connection

const (
	CodeSessionID uint8 = iota

	// Runs the fixed board setup and returns the board
	CodeCreateGame

	// Fetches a board of an earlier setup by game uuid
	CodeFetchBoard
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
	CodeGameNotFound
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
