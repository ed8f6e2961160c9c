package roaring16

import "io"

// WriteTo writes c's Export byte form to w, implementing io.WriterTo.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Export())
	return int64(n), err
}

// ReadFrom replaces c's contents with a container read from r,
// implementing io.ReaderFrom.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	imported, err := Import(data)
	if err != nil {
		return int64(len(data)), err
	}
	*c = *imported
	return int64(len(data)), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Container) MarshalBinary() ([]byte, error) { return c.Export(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Container) UnmarshalBinary(data []byte) error {
	imported, err := Import(data)
	if err != nil {
		return err
	}
	*c = *imported
	return nil
}
