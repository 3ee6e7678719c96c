package nbt

import (
	"fmt"
	"maps"
	"slices"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
)

// Read decodes one tag at the cursor's read position.
//
// An End type byte yields the terminator without reading a name. A compound
// or list that runs out of input before its terminator or count fails with
// protocol.ErrBoundsViolation. On error the read position is restored.
func Read(c *protocol.Cursor) (*Tag, error) {
	start := c.ReadPos()
	t, err := readTag(c, newDepthContext(MaxDepth))
	if err != nil {
		c.Seek(start)
		return nil, err
	}
	return t, nil
}

// Decode decodes one tag from data.
func Decode(data []byte) (*Tag, error) {
	return Read(protocol.NewReadCursor(data))
}

func readTag(c *protocol.Cursor, dc *depthContext) (*Tag, error) {
	b, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	typ := Type(b)
	if typ == TypeEnd {
		return End(), nil
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTagType, b)
	}
	name, err := c.ReadString16()
	if err != nil {
		return nil, err
	}
	t := &Tag{Type: typ, Name: name}
	if err := readPayload(c, t, dc); err != nil {
		return nil, err
	}
	return t, nil
}

func readPayload(c *protocol.Cursor, t *Tag, dc *depthContext) error {
	var err error
	switch t.Type {
	case TypeEnd:
	case TypeByte:
		var v int8
		v, err = c.ReadInt8()
		t.Int = int64(v)
	case TypeShort:
		var v int16
		v, err = c.ReadInt16()
		t.Int = int64(v)
	case TypeInt:
		var v int32
		v, err = c.ReadInt32()
		t.Int = int64(v)
	case TypeLong:
		t.Int, err = c.ReadInt64()
	case TypeFloat:
		var v float32
		v, err = c.ReadFloat32()
		t.Float = float64(v)
	case TypeDouble:
		t.Float, err = c.ReadFloat64()
	case TypeByteArray:
		var n int32
		if n, err = c.ReadInt32(); err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: negative byte array length %d", protocol.ErrMalformed, n)
		}
		if n > protocol.DefaultMaxAllocation {
			return protocol.ErrAllocationTooLarge
		}
		t.Bytes, err = c.ReadBytes(int(n))
	case TypeString:
		t.Text, err = c.ReadString16()
	case TypeList:
		err = readList(c, t, dc)
	case TypeCompound:
		err = readCompound(c, t, dc)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownTagType, t.Type)
	}
	return err
}

func readList(c *protocol.Cursor, t *Tag, dc *depthContext) error {
	if err := dc.enter(); err != nil {
		return err
	}
	defer dc.leave()

	b, err := c.ReadUint8()
	if err != nil {
		return err
	}
	t.Elem = Type(b)
	if !t.Elem.Valid() {
		return fmt.Errorf("%w: list element %d", ErrUnknownTagType, b)
	}
	n, err := c.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative list length %d", protocol.ErrMalformed, n)
	}
	if n > protocol.MaxCollectionCount {
		return protocol.ErrCollectionTooLarge
	}
	if t.Elem == TypeEnd && n > 0 {
		return fmt.Errorf("%w: list of %d End tags", protocol.ErrMalformed, n)
	}

	t.Items = make([]*Tag, n)
	for i := range t.Items {
		item := &Tag{Type: t.Elem}
		if err := readPayload(c, item, dc); err != nil {
			return err
		}
		t.Items[i] = item
	}
	return nil
}

func readCompound(c *protocol.Cursor, t *Tag, dc *depthContext) error {
	if err := dc.enter(); err != nil {
		return err
	}
	defer dc.leave()

	t.Fields = make(map[string]*Tag)
	for {
		if len(t.Fields) > protocol.MaxCollectionCount {
			return protocol.ErrCollectionTooLarge
		}
		child, err := readTag(c, dc)
		if err != nil {
			return err
		}
		if child.Type == TypeEnd {
			return nil
		}
		t.Fields[child.Name] = child
	}
}

// Write encodes t at the cursor's write position: the type byte and, unless t
// is End, the name and payload.
//
// Compound fields are written in name order followed by an End tag. A list
// takes its element type from its first item, or Byte when empty.
func Write(c *protocol.Cursor, t *Tag) error {
	return writeTag(c, t, newDepthContext(MaxDepth))
}

// Encode returns the wire form of t.
func Encode(t *Tag) ([]byte, error) {
	n, err := Size(t)
	if err != nil {
		return nil, err
	}
	c := protocol.NewCursor(n)
	if err := Write(c, t); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

func writeTag(c *protocol.Cursor, t *Tag, dc *depthContext) error {
	if t == nil {
		return ErrNilTag
	}
	if err := c.WriteUint8(uint8(t.Type)); err != nil {
		return err
	}
	if t.Type == TypeEnd {
		return nil
	}
	if err := c.WriteString16(t.Name); err != nil {
		return err
	}
	return writePayload(c, t, dc)
}

func writePayload(c *protocol.Cursor, t *Tag, dc *depthContext) error {
	switch t.Type {
	case TypeEnd:
		return nil
	case TypeByte:
		return c.WriteInt8(int8(t.Int))
	case TypeShort:
		return c.WriteInt16(int16(t.Int))
	case TypeInt:
		return c.WriteInt32(int32(t.Int))
	case TypeLong:
		return c.WriteInt64(t.Int)
	case TypeFloat:
		return c.WriteFloat32(float32(t.Float))
	case TypeDouble:
		return c.WriteFloat64(t.Float)
	case TypeByteArray:
		if err := c.WriteInt32(int32(len(t.Bytes))); err != nil {
			return err
		}
		return c.WriteBytes(t.Bytes)
	case TypeString:
		return c.WriteString16(t.Text)
	case TypeList:
		if err := dc.enter(); err != nil {
			return err
		}
		defer dc.leave()
		if err := c.WriteUint8(uint8(listElem(t))); err != nil {
			return err
		}
		if err := c.WriteInt32(int32(len(t.Items))); err != nil {
			return err
		}
		for _, item := range t.Items {
			if item == nil {
				return ErrNilTag
			}
			if err := writePayload(c, item, dc); err != nil {
				return err
			}
		}
		return nil
	case TypeCompound:
		if err := dc.enter(); err != nil {
			return err
		}
		defer dc.leave()
		for _, name := range slices.Sorted(maps.Keys(t.Fields)) {
			if err := writeTag(c, t.Fields[name], dc); err != nil {
				return err
			}
		}
		return c.WriteUint8(uint8(TypeEnd))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTagType, t.Type)
	}
}

func listElem(t *Tag) Type {
	if len(t.Items) > 0 && t.Items[0] != nil {
		return t.Items[0].Type
	}
	return TypeByte
}

// Size returns the encoded width of t.
func Size(t *Tag) (int, error) {
	return sizeTag(t, newDepthContext(MaxDepth))
}

func sizeTag(t *Tag, dc *depthContext) (int, error) {
	if t == nil {
		return 0, ErrNilTag
	}
	if t.Type == TypeEnd {
		return 1, nil
	}
	n, err := sizePayload(t, dc)
	if err != nil {
		return 0, err
	}
	return 1 + protocol.String16Size(t.Name) + n, nil
}

func sizePayload(t *Tag, dc *depthContext) (int, error) {
	switch t.Type {
	case TypeEnd:
		return 0, nil
	case TypeByte:
		return 1, nil
	case TypeShort:
		return 2, nil
	case TypeInt, TypeFloat:
		return 4, nil
	case TypeLong, TypeDouble:
		return 8, nil
	case TypeByteArray:
		return 4 + len(t.Bytes), nil
	case TypeString:
		return protocol.String16Size(t.Text), nil
	case TypeList:
		if err := dc.enter(); err != nil {
			return 0, err
		}
		defer dc.leave()
		n := 1 + 4
		for _, item := range t.Items {
			if item == nil {
				return 0, ErrNilTag
			}
			m, err := sizePayload(item, dc)
			if err != nil {
				return 0, err
			}
			n += m
		}
		return n, nil
	case TypeCompound:
		if err := dc.enter(); err != nil {
			return 0, err
		}
		defer dc.leave()
		n := 1
		for _, f := range t.Fields {
			m, err := sizeTag(f, dc)
			if err != nil {
				return 0, err
			}
			n += m
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownTagType, t.Type)
	}
}
