// Package nbt reads and writes Named Binary Tag trees.
//
// A tag is a type byte, a String16 name, and a payload:
//
//	Byte, Short, Int, Long   big-endian integer
//	Float, Double            big-endian IEEE 754
//	ByteArray                int32 length, raw bytes
//	String                   String16
//	List                     element type byte, int32 count, unnamed payloads
//	Compound                 named tags up to an End tag
//
// End is a lone zero byte with no name. Names and strings use the same
// String16 encoding as the packet codec, so a tree can be embedded in a
// packet body through a protocol.Cursor.
//
//	root := nbt.NewCompound("Level",
//	    nbt.NewLong("Time", 18000),
//	    nbt.NewList("Entities", nbt.NewCompound("", nbt.NewString("id", "Pig"))),
//	)
//	data, err := nbt.Encode(root)
//	back, err := nbt.Decode(data)
package nbt
