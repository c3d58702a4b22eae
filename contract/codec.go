package contract

import (
	"fmt"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"dapp_punks/sdk"
)

///////////////////////////////////////////////////
// Conversions from/to json strings
///////////////////////////////////////////////////

// ToJSON marshals via the generated tinyjson writers, aborting on writer errors.
func ToJSON(v tinyjson.Marshaler, objectType string) string {
	w := jwriter.Writer{}
	v.MarshalTinyJSON(&w)
	b, err := w.BuildBytes()
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal %s: %v", objectType, err))
	}
	return string(b)
}

// FromJSON unmarshals into the target via its generated tinyjson lexer.
func FromJSON(data string, v tinyjson.Unmarshaler, objectType string) {
	l := jlexer.Lexer{Data: []byte(data)}
	v.UnmarshalTinyJSON(&l)
	if err := l.Error(); err != nil {
		sdk.Abort(fmt.Sprintf("failed to unmarshal %s\nInput data:%s\nError: %v", objectType, data, err))
	}
}

// encodeIDList renders token ids as a JSON array for view responses.
func encodeIDList(ids []uint64) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i, id := range ids {
		if i > 0 {
			w.RawByte(',')
		}
		w.Uint64(id)
	}
	w.RawByte(']')
	b, err := w.BuildBytes()
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal id list: %v", err))
	}
	return string(b)
}
