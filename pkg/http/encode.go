package http

import (
	"fmt"
	"io"
)

// Encoder writes responses to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the MarshalHTTP encoding of resp in a single Write call.
func (enc *Encoder) Encode(resp *Response) error {
	data, err := resp.MarshalHTTP()
	if err != nil {
		return err
	}
	if _, err := enc.w.Write(data); err != nil {
		return fmt.Errorf("http: write response: %w", err)
	}
	return nil
}
