package protocol

import "math"

// OpenWindow opens a container window. The title is a String8.
type OpenWindow struct {
	WindowID      int8
	InventoryType InventoryType
	Title         string
	Slots         int8
}

func (*OpenWindow) Opcode() Opcode { return OpOpenWindow }

func (p *OpenWindow) encode(w *writer) {
	w.i8(p.WindowID)
	w.i8(int8(p.InventoryType))
	w.s8(p.Title)
	w.i8(p.Slots)
}

func decodeOpenWindow(r *reader) Packet {
	return &OpenWindow{
		WindowID:      r.i8(),
		InventoryType: InventoryType(r.i8()),
		Title:         r.s8(),
		Slots:         r.i8(),
	}
}

// CloseWindow closes a window. The client sends it for its own inventory
// too, with WindowID 0.
type CloseWindow struct {
	WindowID int8
}

func (*CloseWindow) Opcode() Opcode { return OpCloseWindow }

func (p *CloseWindow) encode(w *writer) {
	w.i8(p.WindowID)
}

func decodeCloseWindow(r *reader) Packet {
	return &CloseWindow{WindowID: r.i8()}
}

// WindowClick is sent when the player clicks a window slot. Item is what
// the slot held before the click; the server answers with a Transaction.
//
// Wire format:
//
//	[WindowID: i8][Slot: i16][RightClick: i8][ActionNumber: i16][Shift: bool]
//	[ItemID: i16][Count: i8][Uses: i16]   count and uses only when ItemID != -1
type WindowClick struct {
	WindowID     int8
	Slot         int16
	RightClick   int8
	ActionNumber int16
	Shift        bool
	Item         Slot
}

func (*WindowClick) Opcode() Opcode { return OpWindowClick }

func (p *WindowClick) encode(w *writer) {
	w.i8(p.WindowID)
	w.i16(p.Slot)
	w.i8(p.RightClick)
	w.i16(p.ActionNumber)
	w.bool(p.Shift)
	writeSlot(w, p.Item)
}

func decodeWindowClick(r *reader) Packet {
	return &WindowClick{
		WindowID:     r.i8(),
		Slot:         r.i16(),
		RightClick:   r.i8(),
		ActionNumber: r.i16(),
		Shift:        r.bool(),
		Item:         readSlot(r),
	}
}

// SetSlot sets one slot of a window. WindowID -1 with Slot -1 sets the
// item held by the cursor.
type SetSlot struct {
	WindowID int8
	Slot     int16
	Item     Slot
}

func (*SetSlot) Opcode() Opcode { return OpSetSlot }

func (p *SetSlot) encode(w *writer) {
	w.i8(p.WindowID)
	w.i16(p.Slot)
	writeSlot(w, p.Item)
}

func decodeSetSlot(r *reader) Packet {
	return &SetSlot{WindowID: r.i8(), Slot: r.i16(), Item: readSlot(r)}
}

// WindowItems replaces every slot of a window.
type WindowItems struct {
	WindowID int8
	Items    []Slot
}

func (*WindowItems) Opcode() Opcode { return OpWindowItems }

func (p *WindowItems) encode(w *writer) {
	if len(p.Items) > math.MaxInt16 {
		w.fail(ErrCollectionTooLarge)
		return
	}
	w.i8(p.WindowID)
	w.i16(int16(len(p.Items)))
	for _, s := range p.Items {
		writeSlot(w, s)
	}
}

func decodeWindowItems(r *reader) Packet {
	p := &WindowItems{WindowID: r.i8()}
	n := r.count(int64(r.i16()))
	if r.err != nil {
		return nil
	}
	p.Items = make([]Slot, n)
	for i := range p.Items {
		p.Items[i] = readSlot(r)
	}
	return p
}

// UpdateProgressBar updates a furnace progress bar.
type UpdateProgressBar struct {
	WindowID int8
	Bar      int16
	Value    int16
}

func (*UpdateProgressBar) Opcode() Opcode { return OpUpdateProgressBar }

func (p *UpdateProgressBar) encode(w *writer) {
	w.i8(p.WindowID)
	w.i16(p.Bar)
	w.i16(p.Value)
}

func decodeUpdateProgressBar(r *reader) Packet {
	return &UpdateProgressBar{WindowID: r.i8(), Bar: r.i16(), Value: r.i16()}
}

// Transaction accepts or rejects a WindowClick by action number.
type Transaction struct {
	WindowID     int8
	ActionNumber int16
	Accepted     bool
}

func (*Transaction) Opcode() Opcode { return OpTransaction }

func (p *Transaction) encode(w *writer) {
	w.i8(p.WindowID)
	w.i16(p.ActionNumber)
	w.bool(p.Accepted)
}

func decodeTransaction(r *reader) Packet {
	return &Transaction{WindowID: r.i8(), ActionNumber: r.i16(), Accepted: r.bool()}
}
