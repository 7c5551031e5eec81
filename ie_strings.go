package q931

// rawStringIE is the shared shape of every IE whose body is simply a
// length-delimited byte string interpreted as IA5 text (spec.md §4.1:
// "Display, Keypad Facility, User-User... variable-length strings;
// length from the IE length byte"). Display is decoded as plain text:
// the extension-coded charset octet some dialects prepend is not
// separated out and stays part of Text.
type rawStringIE struct {
	Text string
}

func unpackRawString(c *Cursor) (*rawStringIE, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	return &rawStringIE{Text: string(body)}, nil
}

func packRawString(s *rawStringIE, w *Writer) {
	w.WriteLenPrefixed([]byte(s.Text))
}

type Display struct{ rawStringIE }
type KeypadFacility struct{ rawStringIE }
type UserUser struct {
	ProtocolDiscriminator byte
	rawStringIE
}

func unpackDisplay(c *Cursor) (*Display, error) {
	r, err := unpackRawString(c)
	if err != nil {
		return nil, err
	}
	return &Display{*r}, nil
}
func packDisplay(d *Display, w *Writer) { packRawString(&d.rawStringIE, w) }

func unpackKeypadFacility(c *Cursor) (*KeypadFacility, error) {
	r, err := unpackRawString(c)
	if err != nil {
		return nil, err
	}
	return &KeypadFacility{*r}, nil
}
func packKeypadFacility(k *KeypadFacility, w *Writer) { packRawString(&k.rawStringIE, w) }

func unpackUserUser(c *Cursor) (*UserUser, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 1 {
		return nil, newError(ErrIllegalIE, "user-user IE empty", 0, 0)
	}
	return &UserUser{ProtocolDiscriminator: body[0], rawStringIE: rawStringIE{Text: string(body[1:])}}, nil
}
func packUserUser(u *UserUser, w *Writer) {
	body := NewWriter()
	body.WriteByte(u.ProtocolDiscriminator)
	body.WriteBytes([]byte(u.Text))
	w.WriteLenPrefixed(body.Bytes())
}

// Signal carries a single signal-value octet (ring tone, dial tone,
// busy tone, ...); spec.md §4.1 groups it with the other variable
// string-shaped IEs even though its body is a single coded byte.
type Signal struct {
	Value byte
}

func unpackSignal(c *Cursor) (*Signal, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 1 {
		return nil, newError(ErrIllegalIE, "signal IE empty", 0, 0)
	}
	return &Signal{Value: body[0]}, nil
}
func packSignal(s *Signal, w *Writer) { w.WriteLenPrefixed([]byte{s.Value}) }
